package queue

// This file contains the background consumer that listens to the
// user.registered and article.published queues and writes notification
// lines to logs/notifications.log. In a full deployment a mailer would sit
// here; the log file stands in for the outbound channel.

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartNotificationConsumer connects to RabbitMQ, declares the notification
// queues (durable) and starts consuming messages. The function runs a
// reconnect loop with backoff and keeps running across broker restarts;
// processing errors are logged and the offending message rejected so the
// server keeps operating.
func StartNotificationConsumer() error {
	url := brokerURL()

	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("notify-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn); err != nil {
			log.Printf("notify-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
			continue
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("notify-consumer: set QoS failed: %v", err)
	}

	for _, name := range []string{userRegisteredQueue, articlePublishedQueue} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			return fmt.Errorf("queue declare %s: %w", name, err)
		}
	}

	users, err := ch.Consume(userRegisteredQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume %s: %w", userRegisteredQueue, err)
	}
	articles, err := ch.Consume(articlePublishedQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume %s: %w", articlePublishedQueue, err)
	}

	for {
		select {
		case d, ok := <-users:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			ackOrReject(d, handleUserRegistered(d.Body))
		case d, ok := <-articles:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			ackOrReject(d, handleArticlePublished(d.Body))
		}
	}
}

func ackOrReject(d amqp.Delivery, err error) {
	if err != nil {
		log.Printf("notify-consumer: handle message failed: %v", err)
		_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
		return
	}
	_ = d.Ack(false)
}

func handleUserRegistered(body []byte) error {
	var ev UserRegisteredEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	line := fmt.Sprintf("[%s] Welcome mail queued | user_id=%d | email=%q | name=%q\n",
		ev.RegisteredAt, ev.UserID, ev.Email, ev.Name)
	return appendNotification(line)
}

func handleArticlePublished(body []byte) error {
	var ev ArticlePublishedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	line := fmt.Sprintf("[%s] Article published | article_id=%d | title=%q | author_id=%d\n",
		ev.PublishedAt, ev.ArticleID, ev.Title, ev.AuthorID)
	return appendNotification(line)
}

func appendNotification(line string) error {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "notifications.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

package device

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/shenikar/geofence_monitoring/internal/config"
	"github.com/shenikar/geofence_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

// Reporter принимает замеры устройств
type Reporter interface {
	Report(update models.LocationUpdate)
}

type positionMessage struct {
	SubjectID string   `json:"subject_id"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Timestamp int64    `json:"timestamp"`
}

// MQTTSubscriber читает замеры устройств из брокера MQTT
type MQTTSubscriber struct {
	client   mqtt.Client
	topic    string
	reporter Reporter
	logger   *logrus.Logger
}

// NewMQTTClient подключается к брокеру
func NewMQTTClient(cfg *config.Config) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return client, nil
}

func NewMQTTSubscriber(client mqtt.Client, topic string, reporter Reporter, logger *logrus.Logger) *MQTTSubscriber {
	return &MQTTSubscriber{
		client:   client,
		topic:    topic,
		reporter: reporter,
		logger:   logger,
	}
}

func (s *MQTTSubscriber) Start() error {
	token := s.client.Subscribe(s.topic, 1, s.handleMessage)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt subscribe %s: %w", s.topic, err)
	}
	s.logger.WithField("topic", s.topic).Info("Subscribed to device positions")
	return nil
}

// Stop отписывается и закрывает соединение
func (s *MQTTSubscriber) Stop() {
	s.client.Unsubscribe(s.topic).Wait()
	s.client.Disconnect(250)
}

func (s *MQTTSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "device",
		"method":  "handleMessage",
		"topic":   msg.Topic(),
	})

	update, err := parsePositionMessage(msg.Topic(), msg.Payload())
	if err != nil {
		log.WithError(err).Warn("Invalid position message")
		return
	}
	s.reporter.Report(update)
}

// parsePositionMessage разбирает полезную нагрузку. Идентификатор подопечного
// берётся из тела, а при его отсутствии из топика вида /caregiving/subject/<id>/position.
func parsePositionMessage(topic string, payload []byte) (models.LocationUpdate, error) {
	var raw positionMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return models.LocationUpdate{}, fmt.Errorf("decode payload: %w", err)
	}
	if raw.SubjectID == "" {
		raw.SubjectID = subjectFromTopic(topic)
	}
	if err := validatePositionMessage(&raw); err != nil {
		return models.LocationUpdate{}, err
	}

	return models.LocationUpdate{
		SubjectID: raw.SubjectID,
		Location:  models.LocationPoint{Latitude: raw.Latitude, Longitude: raw.Longitude},
		Timestamp: time.Unix(raw.Timestamp, 0).UTC(),
		Accuracy:  raw.Accuracy,
	}, nil
}

func subjectFromTopic(topic string) string {
	parts := strings.Split(strings.Trim(topic, "/"), "/")
	for i := 0; i+1 < len(parts); i++ {
		if parts[i] == "subject" {
			return parts[i+1]
		}
	}
	return ""
}

func validatePositionMessage(msg *positionMessage) error {
	if msg.SubjectID == "" {
		return fmt.Errorf("subject_id: required")
	}
	if msg.Latitude < -90 || msg.Latitude > 90 {
		return fmt.Errorf("latitude: must be between -90 and 90")
	}
	if msg.Longitude < -180 || msg.Longitude > 180 {
		return fmt.Errorf("longitude: must be between -180 and 180")
	}
	if msg.Accuracy != nil && *msg.Accuracy < 0 {
		return fmt.Errorf("accuracy: must not be negative")
	}
	if msg.Timestamp <= 0 {
		return fmt.Errorf("timestamp: must be positive")
	}
	return nil
}

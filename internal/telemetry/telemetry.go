package telemetry

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gizmoview/internal/config"
	"gizmoview/internal/gizmo"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pose is the JSON payload published for one gizmo.
type Pose struct {
	Gizmo string  `json:"gizmo"`
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	Z     float32 `json:"z"`
	W     float32 `json:"w"`
	Roll  float32 `json:"roll"`
	Pitch float32 `json:"pitch"`
	Yaw   float32 `json:"yaw"`
}

// NewPose converts an orientation into a payload with Euler angles in degrees.
func NewPose(c gizmo.Category, q rl.Quaternion) Pose {
	euler := rl.QuaternionToEuler(q)
	return Pose{
		Gizmo: c.String(),
		X:     q.X,
		Y:     q.Y,
		Z:     q.Z,
		W:     q.W,
		Roll:  euler.X * rl.Rad2deg,
		Pitch: euler.Y * rl.Rad2deg,
		Yaw:   euler.Z * rl.Rad2deg,
	}
}

// Client is the part of mqtt.Client the publisher uses.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Publisher sends gizmo orientations at a fixed rate without ever waiting
// on the broker. Tokens from the previous round are checked on the next one.
type Publisher struct {
	client   Client
	topics   map[gizmo.Category]string
	qos      byte
	interval float64
	last     float64
	sent     bool
	pending  []pendingToken
	onClose  func()
}

type pendingToken struct {
	topic string
	token mqtt.Token
}

func NewPublisher(client Client, cfg config.Telemetry) *Publisher {
	return &Publisher{
		client: client,
		topics: map[gizmo.Category]string{
			gizmo.Left:  cfg.TopicLeft,
			gizmo.Right: cfg.TopicRight,
		},
		qos:      cfg.QoS,
		interval: float64(cfg.IntervalMs) / 1000.0,
	}
}

// Connect dials the broker and returns a publisher backed by it.
func Connect(cfg config.Telemetry) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(5 * time.Second)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("MQTT connect to %s: %w", cfg.Broker, token.Error())
	}
	log.Printf("telemetry: connected to %s", cfg.Broker)

	p := NewPublisher(client, cfg)
	p.onClose = func() { client.Disconnect(250) }
	return p, nil
}

// Publish sends both orientations if the interval has passed since the
// last round. Returns true when a round was sent.
func (p *Publisher) Publish(store *gizmo.Store, elapsed float64) bool {
	p.reap()

	if p.sent && elapsed-p.last < p.interval {
		return false
	}

	for _, g := range store.Gizmos() {
		topic := p.topics[g.Category]
		payload, err := json.Marshal(NewPose(g.Category, g.Rotation))
		if err != nil {
			log.Printf("telemetry: marshal %s pose: %v", g.Category, err)
			continue
		}
		token := p.client.Publish(topic, p.qos, false, payload)
		p.pending = append(p.pending, pendingToken{topic: topic, token: token})
	}

	p.last = elapsed
	p.sent = true
	return true
}

// reap logs failures of completed publishes and keeps the rest.
func (p *Publisher) reap() {
	kept := p.pending[:0]
	for _, pt := range p.pending {
		select {
		case <-pt.token.Done():
			if err := pt.token.Error(); err != nil {
				log.Printf("telemetry: publish to %s: %v", pt.topic, err)
			}
		default:
			kept = append(kept, pt)
		}
	}
	p.pending = kept
}

// Pending returns the number of publishes not yet acknowledged.
func (p *Publisher) Pending() int {
	return len(p.pending)
}

func (p *Publisher) Close() {
	if p.onClose != nil {
		p.onClose()
	}
}

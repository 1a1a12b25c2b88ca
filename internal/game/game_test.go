package game

import (
	"testing"
	"time"

	"gizmoview/internal/config"
	"gizmoview/internal/gizmo"
	"gizmoview/internal/telemetry"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func newTestGame() *Game {
	g := New(config.Default(), "")
	g.World.Build(rl.Model{}, rl.Model{})
	return g
}

func leftDrag(motions ...rl.Vector2) gizmo.DragInput {
	return gizmo.DragInput{
		Held:    true,
		Motions: motions,
		Cursor: func() (rl.Vector2, bool) {
			return rl.Vector2{X: 50, Y: 50}, true
		},
		WindowWidth: 1280,
	}
}

func TestStepRotatesAndUpdatesScene(t *testing.T) {
	g := newTestGame()

	g.Step(FrameInput{Delta: 0.016, Elapsed: 2.5, Drag: leftDrag(rl.Vector2{X: 20, Y: 0})})

	q := g.Store.Get(gizmo.Left)
	if q == rl.QuaternionIdentity() {
		t.Fatal("Expected left gizmo to rotate")
	}
	if g.Store.Get(gizmo.Right) != rl.QuaternionIdentity() {
		t.Error("Expected right gizmo untouched")
	}
	if got := g.World.Gizmos[gizmo.Left].Transform.Rotation; got != q {
		t.Errorf("Expected scene rotation %v, got %v", q, got)
	}
	if g.dragSamples != 1 {
		t.Errorf("Expected 1 drag sample, got %d", g.dragSamples)
	}
}

func TestStepCorrectsDriftOnSecondBoundary(t *testing.T) {
	g := newTestGame()
	g.Store.Set(gizmo.Right, rl.Quaternion{W: 3})

	var fired []float64
	g.OnDriftCorrected.AddListener(func(e float64) { fired = append(fired, e) })

	g.Step(FrameInput{Delta: 0.016, Elapsed: 4.5})
	if len(fired) != 0 {
		t.Errorf("Expected no correction mid-second, got %v", fired)
	}

	g.Step(FrameInput{Delta: 0.016, Elapsed: 5.01})
	if len(fired) != 1 || fired[0] != 5.01 {
		t.Errorf("Expected one correction at 5.01, got %v", fired)
	}
	if g.Store.Get(gizmo.Right) != rl.QuaternionIdentity() {
		t.Errorf("Expected renormalized identity, got %v", g.Store.Get(gizmo.Right))
	}
	if g.corrections != 1 {
		t.Errorf("Expected 1 correction counted, got %d", g.corrections)
	}
}

func TestStepNormalizesSameFrameRotation(t *testing.T) {
	g := newTestGame()
	g.Store.Set(gizmo.Left, rl.Quaternion{W: 1.5})

	g.Step(FrameInput{Delta: 0.02, Elapsed: 9.001, Drag: leftDrag(rl.Vector2{X: 40, Y: 25})})

	n := rl.QuaternionLength(g.Store.Get(gizmo.Left))
	if n < 1-1e-6 || n > 1+1e-6 {
		t.Errorf("Expected unit norm after boundary frame, got %v", n)
	}
}

func TestStepReset(t *testing.T) {
	g := newTestGame()
	g.Step(FrameInput{Delta: 0.016, Elapsed: 0.5, Drag: leftDrag(rl.Vector2{X: 10, Y: 10})})

	g.Step(FrameInput{Delta: 0.016, Elapsed: 0.6, Reset: true})
	if g.Store.Get(gizmo.Left) != rl.QuaternionIdentity() {
		t.Errorf("Expected reset to identity, got %v", g.Store.Get(gizmo.Left))
	}

	g.Step(FrameInput{Delta: 0.016, Elapsed: 0.7, Drag: leftDrag(rl.Vector2{X: 10, Y: 10})})
	g.resetRequested = true
	g.Step(FrameInput{Delta: 0.016, Elapsed: 0.8})
	if g.Store.Get(gizmo.Left) != rl.QuaternionIdentity() {
		t.Errorf("Expected HUD reset to apply, got %v", g.Store.Get(gizmo.Left))
	}
	if g.resetRequested {
		t.Error("Reset request should be consumed")
	}
}

type doneToken struct{ done chan struct{} }

func (t doneToken) Wait() bool                       { return true }
func (t doneToken) WaitTimeout(_ time.Duration) bool { return true }
func (t doneToken) Done() <-chan struct{}            { return t.done }
func (t doneToken) Error() error                     { return nil }

type countingClient struct{ topics []string }

func (c *countingClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.topics = append(c.topics, topic)
	done := make(chan struct{})
	close(done)
	return doneToken{done: done}
}

func TestStepPublishesTelemetry(t *testing.T) {
	g := newTestGame()
	client := &countingClient{}
	g.Telemetry = telemetry.NewPublisher(client, g.Config.Telemetry)

	g.Step(FrameInput{Delta: 0.016, Elapsed: 0.2})
	g.Step(FrameInput{Delta: 0.016, Elapsed: 0.216})

	if len(client.topics) != 2 {
		t.Errorf("Expected one throttled round of 2 messages, got %d", len(client.topics))
	}
}

package game

import (
	"log"

	"gizmoview/internal/config"
	"gizmoview/internal/engine"
	"gizmoview/internal/gizmo"
	"gizmoview/internal/telemetry"
	"gizmoview/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FrameInput is everything one tick needs from the window.
type FrameInput struct {
	Delta   float64
	Elapsed float64
	Drag    gizmo.DragInput
	Reset   bool
}

type Game struct {
	Config     *config.Config
	ConfigPath string
	Store      *gizmo.Store
	World      *world.World
	Telemetry  *telemetry.Publisher
	DebugMode  bool

	OnReset          engine.Event
	OnDriftCorrected engine.EventWithArg[float64]

	resetRequested bool
	corrections    int
	dragSamples    int
}

func New(cfg *config.Config, configPath string) *Game {
	store := gizmo.NewStore()
	g := &Game{
		Config:     cfg,
		ConfigPath: configPath,
		Store:      store,
		World:      world.New(store),
	}

	g.OnReset.AddListener(func() {
		g.Store.Reset()
		log.Println("Gizmos reset")
	})
	g.OnDriftCorrected.AddListener(func(elapsed float64) {
		g.corrections++
		if g.DebugMode {
			log.Printf("Renormalized gizmos at %.3fs", elapsed)
		}
	})
	return g
}

func (g *Game) Run() {
	w := g.Config.Window
	flags := uint32(rl.FlagMsaa4xHint)
	if w.Resizable {
		flags |= rl.FlagWindowResizable
	}
	if w.HighDPI {
		flags |= rl.FlagWindowHighdpi
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.TargetFPS)

	// Meshes need the OpenGL context, so the world is built after the window.
	g.World.Initialize()
	defer g.World.Unload()

	if g.Config.Telemetry.Enabled {
		g.connectTelemetry()
	}
	if g.Telemetry != nil {
		defer g.Telemetry.Close()
	}

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}

	g.saveWindowSize()
}

func (g *Game) connectTelemetry() {
	p, err := telemetry.Connect(g.Config.Telemetry)
	if err != nil {
		log.Printf("Telemetry disabled: %v", err)
		return
	}
	g.Telemetry = p
}

func (g *Game) Update() {
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	g.Step(sampleFrame())
}

// Step advances one frame. Drag rotation runs before drift correction so a
// boundary frame renormalizes its own rotation too.
func (g *Game) Step(in FrameInput) {
	if in.Reset || g.resetRequested {
		g.resetRequested = false
		g.OnReset.Invoke()
	}

	g.dragSamples += gizmo.ApplyDrag(g.Store, in.Drag)

	if gizmo.CorrectDrift(g.Store, in.Elapsed, in.Delta) {
		g.OnDriftCorrected.Invoke(in.Elapsed)
	}

	g.World.Update(float32(in.Delta))

	if g.Telemetry != nil {
		g.Telemetry.Publish(g.Store, in.Elapsed)
	}
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(world.Background)

	g.World.Draw()

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) saveWindowSize() {
	if g.ConfigPath == "" {
		return
	}
	width, height := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if width == g.Config.Window.Width && height == g.Config.Window.Height {
		return
	}
	g.Config.Window.Width = width
	g.Config.Window.Height = height
	if err := g.Config.Save(g.ConfigPath); err != nil {
		log.Printf("Failed to save window size: %v", err)
	}
}

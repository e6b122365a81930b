package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/planar/audio"
	"github.com/lixenwraith/planar/config"
	"github.com/lixenwraith/planar/constants"
	"github.com/lixenwraith/planar/editor"
	"github.com/lixenwraith/planar/engine"
	"github.com/lixenwraith/planar/events"
	"github.com/lixenwraith/planar/input"
	"github.com/lixenwraith/planar/physics"
	"github.com/lixenwraith/planar/render"
	"github.com/lixenwraith/planar/scene"
	"github.com/lixenwraith/planar/vmath"
)

func main() {
	configPath := flag.String("config", "planar.yaml", "configuration file")
	scenePath := flag.String("scene", "scene.json", "scene file for save/load")
	flag.Parse()

	if err := run(*configPath, *scenePath); err != nil {
		fmt.Fprintf(os.Stderr, "planar: %v\n", err)
		os.Exit(1)
	}
}

// eventDispatch drains the world's event queue through the router
// once per tick, after physics produced events and before rendering
type eventDispatch struct {
	router *events.Router[*engine.World]
	world  *engine.World
}

func (d *eventDispatch) Update() {
	d.router.DispatchAll(d.world)
}

func (d *eventDispatch) Priority() int {
	return constants.PriorityAudio
}

// sceneLogger records save/load traffic in the structured log, since
// the terminal UI owns the screen
type sceneLogger struct {
	log *zap.Logger
}

func (s *sceneLogger) HandleEvent(_ *engine.World, ev events.Event) {
	s.log.Info("scene event",
		zap.String("type", ev.Type.String()),
		zap.Int64("tick", ev.Tick))
}

func (s *sceneLogger) EventTypes() []events.Type {
	return []events.Type{events.SceneSaved, events.SceneLoaded}
}

func run(configPath, scenePath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.String("config", configPath),
		zap.Float64("time_step", cfg.TimeStep))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	queue := events.NewQueue()
	world := engine.NewWorld(queue)
	space := physics.NewSpace()
	space.Register(world)

	pipeline := physics.NewPipeline(world, space, cfg.Physics())
	world.AddSystem(pipeline)

	session := editor.NewSession(world, space)
	session.CommitFlag = physics.Solid(1, cfg.MaskFor(1))

	router := events.NewRouter[*engine.World](queue)
	router.Register(&sceneLogger{log: logger})

	feedback := audio.NewFeedback()
	if cfg.Audio {
		if err := feedback.Initialize(); err != nil {
			// Run silently; the simulation does not need sound
			logger.Warn("audio unavailable", zap.Error(err))
		} else {
			router.Register(feedback)
			defer feedback.Cleanup()
		}
	}
	world.AddSystem(&eventDispatch{router: router, world: world})

	scheduler := engine.NewScheduler(world, cfg.TickInterval())

	renderer := render.NewRenderer(screen, world, space, session, pipeline,
		cfg.Debug, scheduler.IsPaused)
	world.AddSystem(renderer)

	if sc, err := scene.Load(scenePath); err == nil {
		world.RunSafe(func() {
			sc.Spawn(world, space)
		})
		logger.Info("scene loaded on startup",
			zap.String("path", scenePath),
			zap.Int("shapes", len(sc.Shapes)))
	}

	scheduler.Start()
	defer scheduler.Stop()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}

		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}

		intent := input.Map(ev)
		if intent == input.IntentQuit {
			logger.Info("quit")
			return nil
		}

		handleIntent(intent, world, space, session, renderer, scheduler,
			scenePath, logger)

		// A paused scheduler skips ticks, so redraw from the input
		// path to keep the editor responsive
		if scheduler.IsPaused() {
			world.RunSafe(renderer.Update)
		}
	}
}

func handleIntent(
	intent input.Intent,
	world *engine.World,
	space *physics.Space,
	session *editor.Session,
	renderer *render.Renderer,
	scheduler *engine.Scheduler,
	scenePath string,
	logger *zap.Logger,
) {
	switch intent {
	case input.IntentMoveLeft, input.IntentMoveRight,
		input.IntentMoveUp, input.IntentMoveDown:
		world.RunSafe(func() {
			moveCursor(session, renderer, intent)
		})

	// Camera fields are read by the renderer on the scheduler
	// goroutine, so mutations take the update lock like everything else
	case input.IntentPanLeft:
		world.RunSafe(func() { renderer.Camera.Pan(vmath.VInt(-1, 0)) })
	case input.IntentPanRight:
		world.RunSafe(func() { renderer.Camera.Pan(vmath.VInt(1, 0)) })
	case input.IntentPanUp:
		world.RunSafe(func() { renderer.Camera.Pan(vmath.VInt(0, 1)) })
	case input.IntentPanDown:
		world.RunSafe(func() { renderer.Camera.Pan(vmath.VInt(0, -1)) })

	case input.IntentPrimary:
		world.RunSafe(session.Begin)
	case input.IntentCommit:
		world.RunSafe(func() { session.Commit() })
	case input.IntentCancel:
		world.RunSafe(session.Cancel)
	case input.IntentDelete:
		world.RunSafe(session.DeleteSelection)

	case input.IntentToolSelect:
		world.RunSafe(func() { session.SetTool(editor.ToolSelect) })
	case input.IntentToolPoint:
		world.RunSafe(func() { session.SetTool(editor.ToolPoint) })
	case input.IntentToolLine:
		world.RunSafe(func() { session.SetTool(editor.ToolLine) })
	case input.IntentToolBbox:
		world.RunSafe(func() { session.SetTool(editor.ToolBbox) })
	case input.IntentToolCircle:
		world.RunSafe(func() { session.SetTool(editor.ToolCircle) })
	case input.IntentToolPolygon:
		world.RunSafe(func() { session.SetTool(editor.ToolPolygon) })

	case input.IntentTogglePause:
		scheduler.SetPaused(!scheduler.IsPaused())
	case input.IntentToggleMinkowski:
		world.RunSafe(session.ToggleMinkowski)
	case input.IntentMakeDynamic:
		world.RunSafe(func() { session.MakeDynamic(vmath.One) })

	case input.IntentZoomIn:
		world.RunSafe(renderer.Camera.ZoomIn)
	case input.IntentZoomOut:
		world.RunSafe(renderer.Camera.ZoomOut)

	case input.IntentSave:
		world.RunSafe(func() {
			sc := scene.Capture("scene", space)
			if err := sc.Save(scenePath); err != nil {
				logger.Error("scene save failed",
					zap.String("path", scenePath), zap.Error(err))
				return
			}
			sum, _ := sc.Checksum()
			logger.Info("scene saved",
				zap.String("path", scenePath),
				zap.Int("shapes", len(sc.Shapes)),
				zap.Uint64("checksum", sum))
			world.PushEvent(events.SceneSaved, 0, 0, scenePath)
		})

	case input.IntentLoad:
		world.RunSafe(func() {
			sc, err := scene.Load(scenePath)
			if err != nil {
				logger.Error("scene load failed",
					zap.String("path", scenePath), zap.Error(err))
				return
			}
			// Replace the live world with the loaded one
			for _, e := range space.Shapes.Entities() {
				world.DestroyEntity(e)
			}
			session.Cancel()
			spawned := sc.Spawn(world, space)
			logger.Info("scene loaded",
				zap.String("path", scenePath),
				zap.Int("shapes", len(spawned)))
			world.PushEvent(events.SceneLoaded, 0, 0, scenePath)
		})
	}
}

// moveCursor steps one screen cell in world units so motion feels
// uniform at any zoom
func moveCursor(session *editor.Session, renderer *render.Renderer, intent input.Intent) {
	step := vmath.Div(vmath.One, vmath.FromInt(renderer.Camera.Zoom))
	switch intent {
	case input.IntentMoveLeft:
		session.Cursor.X = vmath.Sub(session.Cursor.X, step)
	case input.IntentMoveRight:
		session.Cursor.X = vmath.Add(session.Cursor.X, step)
	case input.IntentMoveUp:
		session.Cursor.Y = vmath.Add(session.Cursor.Y, step)
	case input.IntentMoveDown:
		session.Cursor.Y = vmath.Sub(session.Cursor.Y, step)
	}
	session.Track()
}

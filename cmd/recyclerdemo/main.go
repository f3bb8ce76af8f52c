package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/recycler/pkg/config"
	"github.com/go-drift/recycler/pkg/errors"
	"github.com/go-drift/recycler/pkg/platform"
	"github.com/go-drift/recycler/pkg/recycler"
	"github.com/go-drift/recycler/pkg/scroll"
	"github.com/go-drift/recycler/pkg/trace"
	"github.com/go-drift/recycler/pkg/viewport"
)

// logErrorHandler routes reported errors into the demo's log file,
// keeping stderr clean while the alternate screen is up.
type logErrorHandler struct{}

func (logErrorHandler) HandleError(err *errors.Error) {
	log.Printf("error: %v", err)
}

func (logErrorHandler) HandlePanic(err *errors.PanicError) {
	log.Printf("panic: %v\n%s", err.Value, err.StackTrace)
}

func main() {
	cfg, err := config.Resolve(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "recyclerdemo: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	errors.SetHandler(logErrorHandler{})

	var recorder *trace.Recorder
	if cfg.TraceFile != "" {
		traceFile, err := os.Create(cfg.TraceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "recyclerdemo: open trace: %v\n", err)
			os.Exit(1)
		}
		defer traceFile.Close()
		recorder = trace.NewRecorder(traceFile)
	}

	items := newItemList(cfg.Items)
	controller := &scroll.ScrollController{}

	var layout viewport.LayoutInfo
	if cfg.Columns > 1 {
		layout = recycler.NewGridLayoutInfo(controller, items, cfg.Columns, cfg.ItemExtent)
	} else {
		layout = recycler.NewLinearLayoutInfo(controller, items, cfg.ItemExtent)
	}

	var physics scroll.ScrollPhysics
	if cfg.Physics == config.PhysicsBouncing {
		physics = scroll.BouncingScrollPhysics{}
	} else {
		physics = scroll.ClampingScrollPhysics{}
	}

	binder := recycler.NewBinder(items, layout, &recycler.Options{
		FirstVisible: viewport.NoPosition,
		LastVisible:  viewport.NoPosition,
		CacheExtent:  cfg.CacheExtent,
		Controller:   controller,
		Physics:      physics,
	})
	defer binder.Dispose()

	if recorder != nil {
		binder.Tracker().AddListener(recorder)
	}

	m := newModel(cfg, items, layout, binder, recorder)

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Tracker dispatches arrive on a buffered channel and are forwarded
	// into the program as messages, so deferred tasks run in Update on
	// the UI goroutine. Sending from inside Update would deadlock.
	dispatches := make(chan func(), 64)
	platform.RegisterDispatch(func(callback func()) {
		select {
		case dispatches <- callback:
		default:
			log.Println("Dispatch queue full, dropping task")
		}
	})
	go func() {
		for task := range dispatches {
			p.Send(dispatchMsg{task: task})
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	close(dispatches)
	log.Printf("session ended after %d viewport dispatches", m.dispatches)
}

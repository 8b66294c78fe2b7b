// Package app implements the application layer for framegraph.
package app

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/framegraph/internal/adapters/telemetry"
	"go.trai.ch/framegraph/internal/adapters/watcher"
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/framegraph/internal/engine/transform"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader ports.SceneLoader
	logger ports.Logger
}

// New creates a new App instance.
func New(loader ports.SceneLoader, log ports.Logger) *App {
	return &App{
		loader: loader,
		logger: log,
	}
}

// QueryOptions configuration for the Query method.
type QueryOptions struct {
	ScenePath string
	Dest      string
	Orig      string
	Point     *domain.Vec3
	Pose      *domain.Pose6
}

// QueryResult is the answer to one transform query. Point and Pose are
// set only when the corresponding input was given.
type QueryResult struct {
	Dest   string
	Orig   string
	Matrix domain.Mat4
	Point  *domain.Vec3
	Pose   *domain.Pose6
}

// Query loads the scene and answers a single transform query.
func (a *App) Query(ctx context.Context, opts QueryOptions) (*QueryResult, error) {
	store, err := a.loader.Load(opts.ScenePath)
	if err != nil {
		return nil, err
	}

	tp := setupOTel()
	defer func() { _ = tp.Shutdown(ctx) }()

	cache := transform.NewCache(store, a.logger, telemetry.NewOTelTracer("framegraph"))
	cache.SubscribeTo(store)

	m, err := cache.Transform(ctx, opts.Dest, opts.Orig)
	if err != nil {
		return nil, queryErr(err, opts.Dest, opts.Orig)
	}

	result := &QueryResult{Dest: opts.Dest, Orig: opts.Orig, Matrix: m}

	if opts.Point != nil {
		p, err := cache.TransformPoint(ctx, opts.Dest, *opts.Point, opts.Orig)
		if err != nil {
			return nil, queryErr(err, opts.Dest, opts.Orig)
		}
		result.Point = &p
	}

	if opts.Pose != nil {
		pose, err := cache.TransformPose(ctx, opts.Dest, *opts.Pose, opts.Orig)
		if err != nil {
			return nil, queryErr(err, opts.Dest, opts.Orig)
		}
		result.Pose = &pose
	}

	return result, nil
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	ScenePath string
	Dest      string
	Orig      string
}

// Watch loads the scene, logs the queried transform, and keeps it fresh
// as the scene file changes on disk. It blocks until ctx is cancelled.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	store, err := a.loader.Load(opts.ScenePath)
	if err != nil {
		return err
	}

	tp := setupOTel()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	cache := transform.NewCache(store, a.logger, telemetry.NewOTelTracer("framegraph"))
	cache.SubscribeTo(store)

	report := func() {
		m, err := cache.Transform(ctx, opts.Dest, opts.Orig)
		if err != nil {
			a.logger.Error(queryErr(err, opts.Dest, opts.Orig))
			return
		}
		t := m.Translation()
		roll, pitch, yaw := m.EulerXYZ()
		a.logger.Info(fmt.Sprintf("%s in %s: t=(%.4f, %.4f, %.4f) rpy=(%.4f, %.4f, %.4f)",
			opts.Orig, opts.Dest, t.X, t.Y, t.Z, roll, pitch, yaw))
	}

	w, err := watcher.NewWatcher()
	if err != nil {
		return err
	}

	reloader := watcher.NewReloader(a.loader, store, a.logger, opts.ScenePath)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func() {
		if err := reloader.Reload(); err != nil {
			a.logger.Error(err)
			return
		}
		report()
	})

	if err := w.Start(ctx, opts.ScenePath); err != nil {
		return err
	}

	report()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for range w.Events() {
			debouncer.Trigger()
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		debouncer.Flush()
		return w.Stop()
	})

	return g.Wait()
}

func queryErr(err error, dest, orig string) error {
	return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrQueryFailed.Error()), "dest", dest), "orig", orig)
}

// setupOTel registers a fresh TracerProvider as the global provider so
// spans started through otel.Tracer() are recorded.
func setupOTel() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	return tp
}

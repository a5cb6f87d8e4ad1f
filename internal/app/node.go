package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exportgen/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/exportgen/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/exportgen/internal/adapters/genex"              //nolint:depguard // Wired in app layer
	"go.trai.ch/exportgen/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/exportgen/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/exportgen/internal/core/ports"
	"go.trai.ch/exportgen/internal/engine/exporter"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			genex.NodeID,
			exporter.NodeID,
			cas.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.PlanLoader](ctx)
	if err != nil {
		return nil, err
	}

	evaluator, err := graft.Dep[ports.ExpressionEvaluator](ctx)
	if err != nil {
		return nil, err
	}

	generator, err := graft.Dep[*exporter.Generator](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, evaluator, generator, store, log, tel), nil
}

package seeder

import (
	"context"
	"fmt"
)

// Stage inserts the rows of one table. Run returns how many rows it created.
type Stage struct {
	Name      string
	DependsOn []string
	Rows      int
	Run       func(ctx context.Context, st *runState) (int, error)
}

// StageGraph orders stages so that every parent table is seeded before its children.
type StageGraph struct {
	stages map[string]*Stage
	names  []string // registration order
}

func NewStageGraph() *StageGraph {
	return &StageGraph{
		stages: make(map[string]*Stage),
	}
}

func (g *StageGraph) AddStage(stage *Stage) error {
	if _, exists := g.stages[stage.Name]; exists {
		return fmt.Errorf("stage %s registered twice", stage.Name)
	}
	g.stages[stage.Name] = stage
	g.names = append(g.names, stage.Name)
	return nil
}

func (g *StageGraph) Stage(name string) *Stage {
	return g.stages[name]
}

// BuildInsertionOrder returns a topological order of the stages. Ties are
// broken by registration order, so a graph registered parents-first comes
// back unchanged.
func (g *StageGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			return fmt.Errorf("circular dependency detected involving stage: %s", name)
		}
		if visited[name] {
			return nil
		}

		stage, ok := g.stages[name]
		if !ok {
			return fmt.Errorf("unknown stage: %s", name)
		}

		temp[name] = true
		for _, dep := range stage.DependsOn {
			if dep == name {
				return fmt.Errorf("stage %s depends on itself", name)
			}
			if _, ok := g.stages[dep]; !ok {
				return fmt.Errorf("stage %s depends on unknown stage %s", name, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range g.names {
		if !visited[name] {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}

package treefile

import (
	"context"
	"fmt"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/bst"
	"github.com/npillmayer/arbor/hierarchy"
	"golang.org/x/sync/errgroup"
)

// Builder consumes a record stream. See Consume.
type Builder func(records <-chan interface{}) error

// Build reads a tree file once and feeds its records to all builders
// concurrently. It returns the first error of any builder. Builders may return
// before the end of the stream.
func Build(ctx context.Context, name string, builders ...Builder) error {
	if len(builders) == 0 {
		return fmt.Errorf("%w: no builders for %s", arbor.ErrIllegalArguments, name)
	}
	r, err := Open(name)
	if err != nil {
		return err
	}
	defer r.Close()
	g, ctx := errgroup.WithContext(ctx)
	for _, b := range builders {
		ch, err := r.Subscribe(ctx)
		if err != nil {
			return err
		}
		g.Go(func() error {
			relay := make(chan interface{})
			stopped := make(chan struct{})
			pumped := make(chan struct{})
			go func() {
				defer close(pumped)
				pump(ch, relay, stopped)
			}()
			err := b(relay)
			close(stopped)
			<-pumped
			return err
		})
	}
	r.Start()
	return g.Wait()
}

// pump forwards records to a builder until the end of the stream. Once the
// builder has stopped, remaining records are dropped, so the broadcaster
// never waits for a builder which returned early.
func pump(from <-chan interface{}, to chan<- interface{}, stopped <-chan struct{}) {
	defer close(to)
	for msg := range from {
		select {
		case to <- msg:
		case <-stopped:
		}
		if _, ok := msg.(end); ok {
			return
		}
	}
}

// ForestBuilder returns a builder which creates one binary search tree per
// record and appends it to forest.
func ForestBuilder(forest *[]*bst.Tree[int]) Builder {
	return func(records <-chan interface{}) error {
		return Consume(records, func(rec Record) error {
			tree, err := bst.FromValues(rec.Values...)
			if err != nil {
				return fmt.Errorf("line %d: %w", rec.Line, err)
			}
			*forest = append(*forest, tree)
			return nil
		})
	}
}

// HierarchyBuilder returns a builder which fills tree from a hierarchy file.
// tree must be empty.
func HierarchyBuilder(tree *hierarchy.Tree[int]) Builder {
	return func(records <-chan interface{}) error {
		return Consume(records, func(rec Record) error {
			if tree.IsEmpty() {
				if len(rec.Values) != 1 {
					return fmt.Errorf("%w: line %d: root record needs exactly one value",
						arbor.ErrIllegalArguments, rec.Line)
				}
				return tree.AddRoot(rec.Values[0])
			}
			if len(rec.Values) != 2 {
				return fmt.Errorf("%w: line %d: expected \"child parent\"",
					arbor.ErrIllegalArguments, rec.Line)
			}
			if err := tree.AddChild(rec.Values[0], rec.Values[1]); err != nil {
				return fmt.Errorf("line %d: %w", rec.Line, err)
			}
			return nil
		})
	}
}

// LoadForest reads a file of binary search trees, one tree per record.
func LoadForest(name string) ([]*bst.Tree[int], error) {
	var forest []*bst.Tree[int]
	if err := Build(context.Background(), name, ForestBuilder(&forest)); err != nil {
		return nil, err
	}
	tracer().Infof("treefile: loaded %d trees from %s", len(forest), name)
	return forest, nil
}

// LoadHierarchy reads a hierarchy file.
func LoadHierarchy(name string) (*hierarchy.Tree[int], error) {
	tree := hierarchy.New[int]()
	if err := Build(context.Background(), name, HierarchyBuilder(tree)); err != nil {
		return nil, err
	}
	tracer().Infof("treefile: loaded hierarchy of %d nodes from %s", tree.Size(), name)
	return tree, nil
}

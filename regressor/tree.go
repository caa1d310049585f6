package regressor

import (
	"errors"
	"fmt"
)

// Node is one entry of a flattened binary regression tree.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

func (n Node) leaf() bool { return n.Left == -1 }

// Tree is a regression tree rooted at Nodes[0].
type Tree struct {
	Nodes []Node `json:"nodes"`
}

func (t Tree) validate(nFeatures int) error {
	if len(t.Nodes) == 0 {
		return errors.New("empty tree")
	}
	for i, n := range t.Nodes {
		if n.leaf() {
			continue
		}
		if n.Feature < 0 || n.Feature >= nFeatures {
			return fmt.Errorf("node %d splits on feature %d of %d", i, n.Feature, nFeatures)
		}
		// children always come after their parent, so walks terminate
		if n.Left <= i || n.Left >= len(t.Nodes) || n.Right <= i || n.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d has invalid children %d/%d", i, n.Left, n.Right)
		}
	}
	return nil
}

// eval walks to a leaf. Samples equal to the threshold go left.
func (t Tree) eval(x []float64) float64 {
	n := t.Nodes[0]
	for !n.leaf() {
		if x[n.Feature] <= n.Threshold {
			n = t.Nodes[n.Left]
		} else {
			n = t.Nodes[n.Right]
		}
	}
	return n.Value
}

// Ensemble is a forest or boosted set of regression trees.
type Ensemble struct {
	nFeatures    int
	trees        []Tree
	mean         bool
	learningRate float64
	baseScore    float64
}

func newEnsemble(a artifact) (*Ensemble, error) {
	if len(a.Trees) == 0 {
		return nil, errors.New("tree ensemble has no trees")
	}
	for i, t := range a.Trees {
		if err := t.validate(a.NFeatures); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}

	e := &Ensemble{
		nFeatures:    a.NFeatures,
		trees:        a.Trees,
		learningRate: a.LearningRate,
		baseScore:    a.BaseScore,
	}
	switch a.Aggregation {
	case "", "mean":
		e.mean = true
	case "sum":
		if e.learningRate == 0 {
			e.learningRate = 1
		}
	default:
		return nil, fmt.Errorf("unknown aggregation %q", a.Aggregation)
	}
	return e, nil
}

func (e *Ensemble) Predict(x []float64) (float64, error) {
	if len(x) != e.nFeatures {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrDimension, len(x), e.nFeatures)
	}
	var sum float64
	for _, t := range e.trees {
		sum += t.eval(x)
	}
	if e.mean {
		return sum / float64(len(e.trees)), nil
	}
	return e.baseScore + e.learningRate*sum, nil
}

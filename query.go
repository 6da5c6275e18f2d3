package shelf

// Operation combines the components and children of a query node
type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op         Operation
	children   []QueryNode
	components []Component
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, components []Component) *compositeNode {
	return &compositeNode{
		op:         op,
		children:   make([]QueryNode, 0),
		components: components,
	}
}

func (n *compositeNode) Evaluate(e Entity, reg *Registry) bool {
	if !reg.Contains(e) {
		return false
	}
	want, missing := reg.signatureFor(n.components)
	sig := reg.signature(e)

	switch n.op {
	case OpAnd:
		// A component with no column is owned by nobody.
		if missing > 0 || !sig.containsAll(want) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(e, reg) {
				return false
			}
		}
		return true

	case OpOr:
		if sig.containsAny(want) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(e, reg) {
				return true
			}
		}
		return false

	case OpNot:
		if len(n.children) == 0 {
			return len(n.components) > 0 && !sig.containsAny(want)
		}
		for _, child := range n.children {
			if child.Evaluate(e, reg) {
				return false
			}
		}
		return !sig.containsAny(want)
	}
	return false
}

func (q *query) And(items ...interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(OpAnd, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Or(items ...interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(OpOr, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Not(items ...interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(OpNot, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) processItems(items ...interface{}) ([]Component, []QueryNode) {
	components := make([]Component, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case Component:
			components = append(components, v)
		case []Component:
			components = append(components, v...)
		case QueryNode:
			children = append(children, v)
		}
	}

	return components, children
}

func (q *query) Evaluate(e Entity, reg *Registry) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(e, reg)
}

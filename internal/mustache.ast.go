package internal

import (
	"fmt"
	"strings"
)

// Node is the interface all AST nodes implement
type Node interface {
	// Type returns the node type identifier
	Type() NodeType
	// String returns a human-readable representation
	String() string
}

// AST is an ordered list of nodes. A compiled AST is never mutated, so it
// can be shared by any number of concurrent renders.
type AST []Node

// String returns a multi-line representation of the tree
func (a AST) String() string {
	var sb strings.Builder
	a.write(&sb, 0)
	return sb.String()
}

func (a AST) write(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, node := range a {
		sb.WriteString(indent)
		sb.WriteString(node.String())
		sb.WriteString(StrNewline)
		if children := childrenOf(node); children != nil {
			children.write(sb, depth+1)
		}
	}
}

// childrenOf returns the body of a node that has one
func childrenOf(node Node) AST {
	switch n := node.(type) {
	case *SectionNode:
		return n.Children
	case *BlockNode:
		return n.Children
	case *OverrideNode:
		return n.Children
	default:
		return nil
	}
}

// TextNode represents literal text content
type TextNode struct {
	Content string
}

// Type returns NodeTypeText
func (n *TextNode) Type() NodeType {
	return NodeTypeText
}

// String returns a string representation
func (n *TextNode) String() string {
	content := n.Content
	if len(content) > MaxStringDisplayLength {
		content = content[:TruncatedStringLength] + TruncationSuffix
	}
	return fmt.Sprintf("TextNode{%q}", content)
}

// NewTextNode creates a new text node
func NewTextNode(content string) *TextNode {
	return &TextNode{Content: content}
}

// VariableNode interpolates the value found at Path
type VariableNode struct {
	Path    string
	Escaped bool
}

// Type returns NodeTypeVariable
func (n *VariableNode) Type() NodeType {
	return NodeTypeVariable
}

// String returns a string representation
func (n *VariableNode) String() string {
	return fmt.Sprintf("VariableNode{%s, escaped=%t}", n.Path, n.Escaped)
}

// NewVariableNode creates a new variable node
func NewVariableNode(path string, escaped bool) *VariableNode {
	return &VariableNode{Path: path, Escaped: escaped}
}

// SectionNode renders its children conditionally or once per list element
type SectionNode struct {
	Path     string
	Inverted bool
	Children AST
}

// Type returns NodeTypeSection
func (n *SectionNode) Type() NodeType {
	return NodeTypeSection
}

// String returns a string representation
func (n *SectionNode) String() string {
	return fmt.Sprintf("SectionNode{%s, inverted=%t, children=%d}", n.Path, n.Inverted, len(n.Children))
}

// NewSectionNode creates a new section node
func NewSectionNode(path string, inverted bool, children AST) *SectionNode {
	return &SectionNode{Path: path, Inverted: inverted, Children: children}
}

// PartialNode expands the named template at render time
type PartialNode struct {
	Name        string
	Indentation string
}

// Type returns NodeTypePartial
func (n *PartialNode) Type() NodeType {
	return NodeTypePartial
}

// String returns a string representation
func (n *PartialNode) String() string {
	return fmt.Sprintf("PartialNode{%s, indentation=%q}", n.Name, n.Indentation)
}

// NewPartialNode creates a new partial node
func NewPartialNode(name, indentation string) *PartialNode {
	return &PartialNode{Name: name, Indentation: indentation}
}

// BlockNode is a named slot whose children are the default content
type BlockNode struct {
	Name     string
	Children AST
}

// Type returns NodeTypeBlock
func (n *BlockNode) Type() NodeType {
	return NodeTypeBlock
}

// String returns a string representation
func (n *BlockNode) String() string {
	return fmt.Sprintf("BlockNode{%s, children=%d}", n.Name, len(n.Children))
}

// NewBlockNode creates a new block node
func NewBlockNode(name string, children AST) *BlockNode {
	return &BlockNode{Name: name, Children: children}
}

// OverrideNode renders the parent template Name with the blocks found in
// Children overriding the parent's blocks of the same name
type OverrideNode struct {
	Name     string
	Children AST
}

// Type returns NodeTypeOverride
func (n *OverrideNode) Type() NodeType {
	return NodeTypeOverride
}

// String returns a string representation
func (n *OverrideNode) String() string {
	return fmt.Sprintf("OverrideNode{%s, children=%d}", n.Name, len(n.Children))
}

// NewOverrideNode creates a new override node
func NewOverrideNode(name string, children AST) *OverrideNode {
	return &OverrideNode{Name: name, Children: children}
}

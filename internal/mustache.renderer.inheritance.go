package internal

import "go.uber.org/zap"

// resolveBlock returns the body a block renders with under the given
// override stack. Frames are visited innermost first and each frame that
// supplies the block replaces the body found so far, so the outermost
// caller wins. Once a frame for a parent has supplied the block, further
// frames for the same parent are skipped; an override fills only the
// nearest slot of that name.
func (r *Renderer) resolveBlock(block *BlockNode, overrides []overrideFrame) AST {
	body := block.Children
	used := make(map[string]bool)

	for i := len(overrides) - 1; i >= 0; i-- {
		frame := overrides[i]
		if used[frame.parent] {
			continue
		}
		resolved, found := r.findBlock(block.Name, body, frame.body, 0)
		if !found {
			continue
		}
		body = resolved
		used[frame.parent] = true
		r.logger.Debug(LogMsgBlockOverridden,
			zap.String(LogFieldBlock, block.Name),
			zap.String(LogFieldParent, frame.parent))
	}
	return body
}

// findBlock searches content for blocks named name. Blocks at the top level
// of content replace current; an Override contributes its parent's blocks
// and then its own, a Partial contributes the blocks of the partial. The
// last match wins.
func (r *Renderer) findBlock(name string, current, content AST, depth int) (AST, bool) {
	if r.config.MaxDepth > 0 && depth >= r.config.MaxDepth {
		r.logger.Debug(LogMsgDepthExceeded, zap.String(LogFieldBlock, name), zap.Int(LogFieldDepth, depth))
		return current, false
	}

	found := false
	for _, node := range content {
		switch n := node.(type) {
		case *BlockNode:
			if n.Name == name {
				current = n.Children
				found = true
			}

		case *OverrideNode:
			parent, ok := r.partials.ResolvePartial(n.Name)
			if !ok {
				continue
			}
			var inParent, inBody bool
			current, inParent = r.findBlock(name, current, parent, depth+1)
			current, inBody = r.findBlock(name, current, n.Children, depth+1)
			found = found || inParent || inBody

		case *PartialNode:
			partial, ok := r.partials.ResolvePartial(n.Name)
			if !ok {
				continue
			}
			var inPartial bool
			current, inPartial = r.findBlock(name, current, partial, depth+1)
			found = found || inPartial
		}
	}
	return current, found
}

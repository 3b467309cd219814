package main

import (
	"fmt"
	"log/slog"
)

// orphanPolicy controls what happens to a reply whose depth has no open
// ancestor in the stream. The page promises depth steps of at most one, but
// deleted or flagged subtrees can leave a reply with nothing to hang from.
type orphanPolicy int

const (
	// dropOrphans excludes such records from the forest entirely.
	dropOrphans orphanPolicy = iota
	// adoptOrphans promotes them to top-level comments.
	adoptOrphans
)

func orphanPolicyFromString(s string) (orphanPolicy, error) {
	switch s {
	case "drop":
		return dropOrphans, nil
	case "adopt":
		return adoptOrphans, nil
	default:
		return dropOrphans, fmt.Errorf("unknown orphan policy %q (want drop or adopt)", s)
	}
}

// buildCommentTree reconstructs the reply forest from the flat record stream.
// It keeps a stack of open ancestors indexed by depth: each record truncates
// the stack to its own depth and attaches to whatever remains on top, so
// construction is O(n) and sibling order always matches document order.
// Returns the forest and the number of records attached to it.
func buildCommentTree(records []CommentRecord, policy orphanPolicy) ([]*Comment, int) {
	var forest []*Comment
	var stack []*Comment
	attached := 0

	for _, record := range records {
		if record.Depth < len(stack) {
			stack = stack[:record.Depth]
		}

		node := &Comment{
			ID:     record.ID,
			Author: record.Author,
			Time:   record.Time,
			Text:   record.Text,
			Depth:  record.Depth,
		}

		if record.Depth == 0 {
			forest = append(forest, node)
			stack = append(stack[:0], node)
			attached++
			continue
		}

		if len(stack) == 0 {
			// A reply appeared before any top-level comment.
			if policy == dropOrphans {
				slog.Warn("Dropping reply with no open ancestor", "id", record.ID, "depth", record.Depth)
				continue
			}
			slog.Debug("Promoting orphaned reply to top level", "id", record.ID, "depth", record.Depth)
			node.Depth = 0
			forest = append(forest, node)
			stack = append(stack, node)
			attached++
			continue
		}

		parent := stack[len(stack)-1]
		// A depth jump past the deepest open ancestor lands on that ancestor,
		// so the parent/child depth invariant holds even for corrupt streams.
		node.Depth = parent.Depth + 1
		parent.Replies = append(parent.Replies, node)
		stack = append(stack, node)
		attached++
	}

	return forest, attached
}

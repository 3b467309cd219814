package main

import "testing"

func record(id string, depth int) CommentRecord {
	return CommentRecord{ID: id, Author: "user-" + id, Time: "2024-01-01", Text: "text " + id, Depth: depth}
}

func TestBuildCommentTree_NestedReplies(t *testing.T) {
	records := []CommentRecord{
		record("1", 0),
		record("2", 1),
		record("3", 1),
		record("4", 2),
	}

	forest, attached := buildCommentTree(records, dropOrphans)

	if attached != 4 {
		t.Errorf("Expected 4 attached comments, got %d", attached)
	}
	if len(forest) != 1 {
		t.Fatalf("Expected 1 root, got %d", len(forest))
	}

	root := forest[0]
	if root.ID != "1" || len(root.Replies) != 2 {
		t.Fatalf("Expected root 1 with 2 replies, got %s with %d", root.ID, len(root.Replies))
	}
	if root.Replies[0].ID != "2" || len(root.Replies[0].Replies) != 0 {
		t.Errorf("Expected first reply 2 with no children, got %s with %d", root.Replies[0].ID, len(root.Replies[0].Replies))
	}
	if root.Replies[1].ID != "3" || len(root.Replies[1].Replies) != 1 {
		t.Fatalf("Expected second reply 3 with 1 child, got %s with %d", root.Replies[1].ID, len(root.Replies[1].Replies))
	}
	if root.Replies[1].Replies[0].ID != "4" {
		t.Errorf("Expected grandchild 4, got %s", root.Replies[1].Replies[0].ID)
	}
}

func TestBuildCommentTree_DepthInvariant(t *testing.T) {
	records := []CommentRecord{
		record("1", 0),
		record("2", 1),
		record("3", 2),
		record("4", 1),
		record("5", 0),
	}

	forest, _ := buildCommentTree(records, dropOrphans)

	var check func(c *Comment, parentDepth int)
	check = func(c *Comment, parentDepth int) {
		if c.Depth != parentDepth+1 {
			t.Errorf("Comment %s: depth %d, parent depth %d", c.ID, c.Depth, parentDepth)
		}
		for _, reply := range c.Replies {
			check(reply, c.Depth)
		}
	}
	for _, root := range forest {
		if root.Depth != 0 {
			t.Errorf("Root %s has depth %d", root.ID, root.Depth)
		}
		for _, reply := range root.Replies {
			check(reply, 0)
		}
	}
}

func TestBuildCommentTree_SiblingOrder(t *testing.T) {
	records := []CommentRecord{
		record("1", 0),
		record("2", 1),
		record("3", 1),
		record("4", 1),
		record("5", 0),
	}

	forest, _ := buildCommentTree(records, dropOrphans)

	if len(forest) != 2 || forest[0].ID != "1" || forest[1].ID != "5" {
		t.Fatalf("Expected roots [1 5], got %d roots", len(forest))
	}
	want := []string{"2", "3", "4"}
	for i, reply := range forest[0].Replies {
		if reply.ID != want[i] {
			t.Errorf("Reply %d: expected %s, got %s", i, want[i], reply.ID)
		}
	}
}

func TestBuildCommentTree_DepthJumpAttachesToDeepestAncestor(t *testing.T) {
	// Depth jumps from 0 straight to 3; the node should land under the root
	// with its depth normalized.
	records := []CommentRecord{
		record("1", 0),
		record("2", 3),
	}

	forest, attached := buildCommentTree(records, dropOrphans)

	if attached != 2 {
		t.Errorf("Expected 2 attached, got %d", attached)
	}
	if len(forest) != 1 || len(forest[0].Replies) != 1 {
		t.Fatalf("Expected one root with one reply")
	}
	if got := forest[0].Replies[0].Depth; got != 1 {
		t.Errorf("Expected normalized depth 1, got %d", got)
	}
}

func TestBuildCommentTree_DropsOrphanReplies(t *testing.T) {
	records := []CommentRecord{
		record("1", 2),
		record("2", 0),
		record("3", 1),
	}

	forest, attached := buildCommentTree(records, dropOrphans)

	if attached != 2 {
		t.Errorf("Expected 2 attached, got %d", attached)
	}
	if len(forest) != 1 || forest[0].ID != "2" {
		t.Fatalf("Expected single root 2, got %d roots", len(forest))
	}
	var seen func(c *Comment) bool
	seen = func(c *Comment) bool {
		if c.ID == "1" {
			return true
		}
		for _, reply := range c.Replies {
			if seen(reply) {
				return true
			}
		}
		return false
	}
	if seen(forest[0]) {
		t.Error("Orphan record 1 should not appear anywhere in the forest")
	}
}

func TestBuildCommentTree_AdoptsOrphanReplies(t *testing.T) {
	records := []CommentRecord{
		record("1", 2),
		record("2", 0),
	}

	forest, attached := buildCommentTree(records, adoptOrphans)

	if attached != 2 {
		t.Errorf("Expected 2 attached, got %d", attached)
	}
	if len(forest) != 2 {
		t.Fatalf("Expected 2 roots, got %d", len(forest))
	}
	if forest[0].ID != "1" || forest[0].Depth != 0 {
		t.Errorf("Expected adopted orphan 1 as first root at depth 0, got %s at depth %d", forest[0].ID, forest[0].Depth)
	}
}

func TestBuildCommentTree_Empty(t *testing.T) {
	forest, attached := buildCommentTree(nil, dropOrphans)
	if len(forest) != 0 || attached != 0 {
		t.Errorf("Expected empty forest, got %d roots, %d attached", len(forest), attached)
	}
}

func TestOrphanPolicyFromString(t *testing.T) {
	testCases := []struct {
		input    string
		expected orphanPolicy
		wantErr  bool
	}{
		{"drop", dropOrphans, false},
		{"adopt", adoptOrphans, false},
		{"keep", dropOrphans, true},
		{"", dropOrphans, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			policy, err := orphanPolicyFromString(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if policy != tc.expected {
				t.Errorf("Expected policy %v, got %v", tc.expected, policy)
			}
		})
	}
}

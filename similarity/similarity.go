// Package similarity implements the greedy single-pass grouping this tool
// uses for --similar: files join the first existing group whose Data-Code is
// within a Hamming-distance threshold of their own, or start a new group.
package similarity

import (
	"math/bits"
	"sort"
)

// File is one input to clustering: a path and the Data-Code body bytes
// extracted from its ISCC-SUM (8 bytes narrow, 16 bytes wide).
type File struct {
	Path     string
	ISCC     string
	DataBody []byte
}

// Member is one non-reference file in a Group, with its Hamming distance to
// the group's reference.
type Member struct {
	File     File
	Distance int
}

// Group is a similarity cluster with two or more members.
type Group struct {
	Ref     File
	Members []Member
}

// Distance returns the Hamming distance between two equal-length Data-Code
// bodies.
func Distance(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	d := 0
	for i := 0; i < n; i++ {
		d += bits.OnesCount8(a[i] ^ b[i])
	}
	return d
}

// Cluster groups files in input order: each file joins the first existing
// group whose reference is within threshold Hamming distance, or becomes the
// reference of a new group. Groups with fewer than two members (singletons)
// are suppressed from the result. Within a surviving group, members are
// sorted ascending by distance to the reference, ties broken by input order.
func Cluster(files []File, threshold int) []Group {
	var groups []*Group

	for _, f := range files {
		joined := false
		for _, g := range groups {
			if Distance(g.Ref.DataBody, f.DataBody) <= threshold {
				g.Members = append(g.Members, Member{File: f, Distance: Distance(g.Ref.DataBody, f.DataBody)})
				joined = true
				break
			}
		}
		if !joined {
			groups = append(groups, &Group{Ref: f})
		}
	}

	var out []Group
	for _, g := range groups {
		if len(g.Members) == 0 {
			continue
		}
		sort.SliceStable(g.Members, func(i, j int) bool {
			return g.Members[i].Distance < g.Members[j].Distance
		})
		out = append(out, *g)
	}
	return out
}

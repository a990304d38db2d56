// Package main runs FindBestMove end-to-end over a reference booklet of
// challenges and reports search cost, mirroring this repository's perft
// harness adapted from move-tree-depth counting to puzzle-solve benchmarking.
package main

// challenge is one reference booklet entry: a set of verifier numbers
// naming a Game to solve.
type challenge struct {
	name      string
	verifiers []int
}

// referenceBooklet is a 20-entry list of verifier selections exercised by
// the benchmark. Entries 1-7 are the worked scenarios also covered by
// search's end-to-end tests; the remainder vary verifier count and catalog
// coverage. A selection that happens to yield an empty CandidateTable is
// skipped and logged, not treated as a benchmark failure -- see runBooklet.
var referenceBooklet = []challenge{
	{"booklet-01", []int{4, 9, 11, 14}},
	{"booklet-02", []int{3, 7, 10, 14}},
	{"booklet-03", []int{4, 9, 13, 17}},
	{"booklet-04", []int{3, 8, 15, 16}},
	{"booklet-05", []int{2, 6, 14, 17}},
	{"booklet-06", []int{12, 16, 18, 19, 21}},
	{"booklet-07", []int{18, 21, 37, 48}},
	{"booklet-08", []int{1, 5, 11, 20}},
	{"booklet-09", []int{2, 9, 12, 22}},
	{"booklet-10", []int{5, 6, 7, 18, 20}},
	{"booklet-11", []int{8, 10, 17, 23}},
	{"booklet-12", []int{11, 12, 13, 34, 35}},
	{"booklet-13", []int{3, 4, 19, 23}},
	{"booklet-14", []int{14, 15, 24, 25}},
	{"booklet-15", []int{26, 27, 31, 32}},
	{"booklet-16", []int{28, 29, 30, 36}},
	{"booklet-17", []int{33, 39, 45, 46}},
	{"booklet-18", []int{40, 41, 43, 44}},
	{"booklet-19", []int{2, 5, 8, 11, 20, 28}},
	{"booklet-20", []int{9, 13, 18, 24, 37}},
}

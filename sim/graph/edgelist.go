package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrEmptyEdgeList is returned when an edge list contains no edges.
var ErrEmptyEdgeList = errors.New("graph: edge list has no edges")

// MaxEdgeListVertexID is the largest vertex id LoadEdgeList accepts. Ids are
// dense, so one large id allocates every vertex below it.
const MaxEdgeListVertexID = 1<<24 - 1

// LoadEdgeListFile reads an edge list from path. See LoadEdgeList.
func LoadEdgeListFile(path string, directed bool) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading edge list: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadEdgeList(f, directed)
}

// LoadEdgeList parses whitespace-separated "u v" lines with non-negative
// integer ids no larger than MaxEdgeListVertexID. Extra columns (e.g. weights) are ignored; blank lines and lines
// starting with '#' or '%' are skipped; self loops are dropped. The vertex
// count is the largest id plus one, so unlisted ids become isolated vertices.
func LoadEdgeList(r io.Reader, directed bool) (*Network, error) {
	var edges [][2]int
	maxID := -1
	selfLoops := 0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("parsing edge list: line %d: expected \"u v\", got %q", lineNo, line)
		}
		u, err := parseVertex(fields[0])
		if err != nil {
			return nil, fmt.Errorf("parsing edge list: line %d: %w", lineNo, err)
		}
		v, err := parseVertex(fields[1])
		if err != nil {
			return nil, fmt.Errorf("parsing edge list: line %d: %w", lineNo, err)
		}
		maxID = max(maxID, u, v)
		if u == v {
			selfLoops++
			continue
		}
		edges = append(edges, [2]int{u, v})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading edge list: %w", err)
	}
	if len(edges) == 0 {
		return nil, ErrEmptyEdgeList
	}
	if selfLoops > 0 {
		logrus.Debugf("edge list: dropped %d self loops", selfLoops)
	}

	nw := NewNetwork(maxID+1, directed)
	for _, e := range edges {
		if err := nw.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("parsing edge list: %w", err)
		}
	}
	logrus.Debugf("edge list: %d vertices, %d arcs, directed=%v", nw.VertexCount(), nw.ArcCount(), directed)
	return nw, nil
}

func parseVertex(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("vertex id %q: %w", s, err)
	}
	if id < 0 {
		return 0, fmt.Errorf("vertex id %d: %w", id, ErrVertexOutOfRange)
	}
	if id > MaxEdgeListVertexID {
		return 0, fmt.Errorf("vertex id %d exceeds %d: %w", id, MaxEdgeListVertexID, ErrVertexOutOfRange)
	}
	return id, nil
}

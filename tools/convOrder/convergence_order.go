package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a mesh refinement study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	studies, err := readCSV(bufio.NewReader(f))
	if err != nil {
		panic(err)
	}
	for _, key := range sortedKeys(studies) {
		cs := studies[key]
		cs.Sort()
		fmt.Printf("Title = %s, Rule = %s\n", cs.title, cs.rule)
		order := cs.ObservedOrder()
		for i := range cs.numElements {
			if i == 0 {
				fmt.Printf("%d, %v\n", cs.numElements[i], cs.err[i])
				continue
			}
			fmt.Printf("%d, %v, %5.2f\n", cs.numElements[i], cs.err[i], order[i-1])
		}
	}
}

// ConvergenceStudy holds the integration error of one rule over a sequence
// of uniformly refined meshes
type ConvergenceStudy struct {
	title, rule string
	numElements []int
	err         []float64
}

func NewConvergenceStudy(title, rule string) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
		rule:  rule,
	}
}

func (cs *ConvergenceStudy) Add(numElements int, err float64) {
	cs.numElements = append(cs.numElements, numElements)
	cs.err = append(cs.err, err)
}

func (cs *ConvergenceStudy) Len() int           { return len(cs.numElements) }
func (cs *ConvergenceStudy) Less(i, j int) bool { return cs.numElements[i] < cs.numElements[j] }
func (cs *ConvergenceStudy) Swap(i, j int) {
	cs.numElements[i], cs.numElements[j] = cs.numElements[j], cs.numElements[i]
	cs.err[i], cs.err[j] = cs.err[j], cs.err[i]
}

// Sort orders the entries by increasing element count
func (cs *ConvergenceStudy) Sort() { sort.Sort(cs) }

// ObservedOrder is the order of accuracy between consecutive entries, with
// the mesh spacing taken as h ~ 1/sqrt(K)
func (cs *ConvergenceStudy) ObservedOrder() (order []float64) {
	if cs.Len() < 2 {
		return
	}
	order = make([]float64, cs.Len()-1)
	for i := 1; i < cs.Len(); i++ {
		hRatio := math.Sqrt(float64(cs.numElements[i]) / float64(cs.numElements[i-1]))
		order[i-1] = math.Log(cs.err[i-1]/cs.err[i]) / math.Log(hRatio)
	}
	return
}

// readCSV expects a header row followed by rows of title, rule, elements,
// error; rows sharing a title and rule form one study
func readCSV(rd io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records [][]string
		ok      bool
		cs      *ConvergenceStudy
		K       int
		e       float64
	)
	studies = make(map[string]*ConvergenceStudy)
	r := csv.NewReader(rd)
	r.FieldsPerRecord = 4
	if records, err = r.ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		title, rule := rec[0], rec[1]
		if K, err = strconv.Atoi(rec[2]); err != nil {
			err = fmt.Errorf("row %d: %w", i, err)
			return
		}
		if e, err = strconv.ParseFloat(rec[3], 64); err != nil {
			err = fmt.Errorf("row %d: %w", i, err)
			return
		}
		combTitle := title + rule
		if cs, ok = studies[combTitle]; !ok {
			cs = NewConvergenceStudy(title, rule)
			studies[combTitle] = cs
		}
		cs.Add(K, e)
	}
	return
}

func sortedKeys(studies map[string]*ConvergenceStudy) (keys []string) {
	for key := range studies {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}

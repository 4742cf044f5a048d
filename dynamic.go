package bloom

// Dynamic is a Bloom filter that doesn't need a pre-set size. The idea comes
// from http://gsd.di.uminho.pt/members/cbm/ps/dbloom.pdf
type Dynamic struct {
	fs []dynamicStage
}

type dynamicStage struct {
	f     *Default
	n     int     // capacity the stage was sized for
	p     float64 // probability the stage was sized for
	added int     // Insert calls routed to this stage
}

const (
	dynamicInitial = 4096

	// dynamicTightening scales p for each appended filter so the summed
	// false positive rate stays below p/(1-dynamicTightening).
	dynamicTightening = 0.85
)

// NewDynamic creates a new Bloom filter for an unbounded number of items with
// probability p. See New for more information.
func NewDynamic(p float64) (*Dynamic, error) {
	f, err := New(dynamicInitial, p)
	if err != nil {
		return nil, err
	}
	return &Dynamic{fs: []dynamicStage{{f: f, n: dynamicInitial, p: p}}}, nil
}

// InsertBytes adds key to the newest filter, appending a filter with twice the
// capacity once the newest one has received as many inserts as it was sized
// for. Repeated keys count towards that limit.
func (d *Dynamic) InsertBytes(key []byte) {
	s := &d.fs[len(d.fs)-1]
	s.f.InsertBytes(key)
	s.added++

	if s.added >= s.n {
		n := s.n * 2

		// Try and catch a Dynamic filter that grows too large and give a nice
		// message.
		if n < s.n {
			panic("bloom.Dynamic: too large")
		}
		p := s.p * dynamicTightening
		f, err := New(n, p)
		if err != nil {
			panic("bloom.Dynamic: " + err.Error())
		}
		d.fs = append(d.fs, dynamicStage{f: f, n: n, p: p})
	}
}

func (d *Dynamic) Insert(key string) { d.InsertBytes(toBytes(key)) }

func (d *Dynamic) ContainsBytes(key []byte) bool {
	for _, s := range d.fs {
		if s.f.ContainsBytes(key) {
			return true
		}
	}
	return false
}

func (d *Dynamic) Contains(key string) bool { return d.ContainsBytes(toBytes(key)) }

// Stages returns the number of filters in the chain.
func (d *Dynamic) Stages() int { return len(d.fs) }

// ApproximateElementCount sums the estimates of every filter in the chain.
func (d *Dynamic) ApproximateElementCount() float64 {
	var n float64
	for _, s := range d.fs {
		n += s.f.ApproximateElementCount()
	}
	return n
}

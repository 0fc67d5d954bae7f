package storage

import (
	"fmt"
	"math"
	"slices"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/alekhya-chintada/skillmatrix/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	r := reader{bs: data}
	id := r.uint64()
	return core.ID(id), r.err
}

// MarshalProfile serializes a Profile to bytes.
func MarshalProfile(p *core.Profile) []byte {
	var s sizer
	writeProfile(&s, p)
	w := writer{bs: make([]byte, s.n)}
	writeProfile(&w, p)
	return w.bs
}

// UnmarshalProfile deserializes a Profile from bytes.
func UnmarshalProfile(data []byte) (*core.Profile, error) {
	r := reader{bs: data}
	p := &core.Profile{
		EmployeeID: r.string(),
		Name:       r.string(),
		JobLevel:   r.string(),
		Company:    r.string(),
		Email:      r.string(),
	}
	for range r.length() {
		p.Skills = append(p.Skills, core.Skill{
			Name:             r.string(),
			Proficiency:      core.Proficiency(r.string()),
			IsPrimary:        core.Flag(r.string()),
			IsCurrent:        core.Flag(r.string()),
			ExperienceMonths: r.int(),
		})
	}
	for range r.length() {
		p.Courses = append(p.Courses, core.Course{Name: r.string(), CompletedOn: r.string()})
	}
	for range r.length() {
		p.Certifications = append(p.Certifications, core.Certification{Name: r.string(), CertifiedOn: r.string()})
	}
	if r.err != nil {
		return nil, r.err
	}
	return p, nil
}

// MarshalDocument serializes a Document together with its insertion sequence.
func MarshalDocument(doc Document, seq uint64) []byte {
	var s sizer
	writeDocument(&s, doc, seq)
	w := writer{bs: make([]byte, s.n)}
	writeDocument(&w, doc, seq)
	return w.bs
}

// UnmarshalDocument deserializes a Document and its insertion sequence.
func UnmarshalDocument(data []byte) (Document, uint64, error) {
	r := reader{bs: data}
	seq := r.uint64()
	doc := Document{ID: r.string()}
	if n := r.length(); n > 0 {
		doc.Vector = make([]float32, 0, n)
		for range n {
			doc.Vector = append(doc.Vector, r.float32())
		}
	}
	if n := r.length(); n > 0 {
		doc.Metadata = make(map[string]string, n)
		for range n {
			k := r.string()
			doc.Metadata[k] = r.string()
		}
	}
	if r.err != nil {
		return Document{}, 0, r.err
	}
	return doc, seq, nil
}

// encoder is implemented by sizer and writer so each record layout is
// described once.
type encoder interface {
	string(v string)
	int(v int)
	uint64(v uint64)
	float32(v float32)
}

func writeProfile(e encoder, p *core.Profile) {
	e.string(p.EmployeeID)
	e.string(p.Name)
	e.string(p.JobLevel)
	e.string(p.Company)
	e.string(p.Email)
	e.int(len(p.Skills))
	for _, s := range p.Skills {
		e.string(s.Name)
		e.string(string(s.Proficiency))
		e.string(string(s.IsPrimary))
		e.string(string(s.IsCurrent))
		e.int(s.ExperienceMonths)
	}
	e.int(len(p.Courses))
	for _, c := range p.Courses {
		e.string(c.Name)
		e.string(c.CompletedOn)
	}
	e.int(len(p.Certifications))
	for _, c := range p.Certifications {
		e.string(c.Name)
		e.string(c.CertifiedOn)
	}
}

func writeDocument(e encoder, doc Document, seq uint64) {
	e.uint64(seq)
	e.string(doc.ID)
	e.int(len(doc.Vector))
	for _, f := range doc.Vector {
		e.float32(f)
	}
	// Sorted keys keep the encoding deterministic.
	keys := make([]string, 0, len(doc.Metadata))
	for k := range doc.Metadata {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	e.int(len(keys))
	for _, k := range keys {
		e.string(k)
		e.string(doc.Metadata[k])
	}
}

type sizer struct{ n int }

func (s *sizer) string(v string)   { s.n += ord.String.Size(v) }
func (s *sizer) int(v int)         { s.n += varint.Int.Size(v) }
func (s *sizer) uint64(v uint64)   { s.n += varint.Uint64.Size(v) }
func (s *sizer) float32(v float32) { s.n += varint.Uint32.Size(math.Float32bits(v)) }

type writer struct {
	bs []byte
	n  int
}

func (w *writer) string(v string)   { w.n += ord.String.Marshal(v, w.bs[w.n:]) }
func (w *writer) int(v int)         { w.n += varint.Int.Marshal(v, w.bs[w.n:]) }
func (w *writer) uint64(v uint64)   { w.n += varint.Uint64.Marshal(v, w.bs[w.n:]) }
func (w *writer) float32(v float32) { w.n += varint.Uint32.Marshal(math.Float32bits(v), w.bs[w.n:]) }

// reader decodes fields in order and latches the first error; later reads
// return zero values.
type reader struct {
	bs  []byte
	n   int
	err error
}

func (r *reader) ok() bool {
	if r.err != nil {
		return false
	}
	if r.n >= len(r.bs) {
		r.err = ErrTruncatedData
		return false
	}
	return true
}

func (r *reader) fail(err error) {
	r.err = fmt.Errorf("%w: %w", ErrSerializationFailed, err)
}

func (r *reader) string() string {
	if !r.ok() {
		return ""
	}
	v, n, err := ord.String.Unmarshal(r.bs[r.n:])
	r.n += n
	if err != nil {
		r.fail(err)
	}
	return v
}

func (r *reader) int() int {
	if !r.ok() {
		return 0
	}
	v, n, err := varint.Int.Unmarshal(r.bs[r.n:])
	r.n += n
	if err != nil {
		r.fail(err)
	}
	return v
}

func (r *reader) uint64() uint64 {
	if !r.ok() {
		return 0
	}
	v, n, err := varint.Uint64.Unmarshal(r.bs[r.n:])
	r.n += n
	if err != nil {
		r.fail(err)
	}
	return v
}

func (r *reader) float32() float32 {
	if !r.ok() {
		return 0
	}
	v, n, err := varint.Uint32.Unmarshal(r.bs[r.n:])
	r.n += n
	if err != nil {
		r.fail(err)
	}
	return math.Float32frombits(v)
}

// length reads a collection length, rejecting counts that cannot fit in the
// remaining input.
func (r *reader) length() int {
	n := r.int()
	if r.err != nil {
		return 0
	}
	if n < 0 || n > len(r.bs)-r.n {
		r.err = fmt.Errorf("%w: bad length %d", ErrSerializationFailed, n)
		return 0
	}
	return n
}

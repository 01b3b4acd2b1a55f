package pb

import (
	"fmt"
	"sort"

	"github.com/pushfix/pushfix/json"
	"github.com/pushfix/pushfix/push"
)

// Field is one entry of a FieldMap.
type Field struct {
	Name  string        // diagnostic field name
	Num   uint32        // field number
	Type  WireType      // expected wire type
	Value push.Callback // value callback, activated once per occurrence
}

// FieldMap maps field numbers to value callbacks for a Message.
// Populate it before the message is first activated; it must not be
// modified afterwards.
type FieldMap struct {
	fields map[uint32]*Field
}

// NewFieldMap returns a new empty field map.
func NewFieldMap() *FieldMap {
	return &FieldMap{fields: make(map[uint32]*Field)}
}

// Add registers a value callback for the given field number, to run
// whenever a tag with that number and wire type is read.
func (fm *FieldMap) Add(name string, num uint32, wt WireType, value push.Callback) error {
	switch {
	case value == nil:
		return push.ErrMemory
	case wt == WIRE_GROUP_START || wt == WIRE_GROUP_END:
		return ErrGroup
	case !NewTag(num, wt).Valid():
		return ErrFieldNum
	}

	if _, ok := fm.fields[num]; ok {
		return fmt.Errorf("%s: %w", name, ErrFieldDupe)
	}

	fm.fields[num] = &Field{Name: name, Num: num, Type: wt, Value: value}
	return nil
}

// Get returns the field registered for num, or nil.
func (fm *FieldMap) Get(num uint32) *Field {
	return fm.fields[num]
}

// Len returns the number of registered fields.
func (fm *FieldMap) Len() int {
	return len(fm.fields)
}

// ToJSON appends a JSON object describing the registered fields to dst.
func (fm *FieldMap) ToJSON(dst []byte) []byte {
	nums := make([]uint32, 0, len(fm.fields))
	for num := range fm.fields {
		nums = append(nums, num)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

	dst = append(dst, '{')
	for i, num := range nums {
		f := fm.fields[num]
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = append(dst, '"')
		dst = json.U32(dst, num)
		dst = append(dst, `":{"name":"`...)
		dst = append(dst, f.Name...)
		dst = append(dst, `","type":"`...)
		dst = append(dst, f.Type.String()...)
		dst = append(dst, `"}`...)
	}
	return append(dst, '}')
}

// String dumps the field map to JSON
func (fm *FieldMap) String() string {
	return string(fm.ToJSON(nil))
}

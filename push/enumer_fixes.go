package push

// helpers / fixes to automatically generated code
// probably the real fix would be to fork the generator

var StatusValue = _StatusNameToValueMap
var StatusName = map[Status]string{}

func init() {
	for _, v := range StatusValues() {
		StatusName[v] = v.String()
	}
}

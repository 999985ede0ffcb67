package robot

import "strconv"

// Method identifies a firmware capability. The numeric value is the code
// placed in the first path segment of every request.
type Method int

// Method codes understood by the RoDI firmware.
const (
	MethodBlink Method = 1
	MethodSense Method = 2
	MethodMove  Method = 3
	MethodSing  Method = 4
	MethodSee   Method = 5
	MethodPixel Method = 6
	MethodLight Method = 7
	MethodLED   Method = 8
	MethodIMU   Method = 9
)

var methodNames = map[Method]string{
	MethodBlink: "blink",
	MethodSense: "sense",
	MethodMove:  "move",
	MethodSing:  "sing",
	MethodSee:   "see",
	MethodPixel: "pixel",
	MethodLight: "light",
	MethodLED:   "led",
	MethodIMU:   "imu",
}

// AllMethods returns every method in code order (1-9).
func AllMethods() []Method {
	return []Method{
		MethodBlink,
		MethodSense,
		MethodMove,
		MethodSing,
		MethodSee,
		MethodPixel,
		MethodLight,
		MethodLED,
		MethodIMU,
	}
}

// Valid reports whether m is one of the firmware's method codes.
func (m Method) Valid() bool {
	_, ok := methodNames[m]
	return ok
}

// Code returns the numeric code sent on the wire.
func (m Method) Code() int {
	return int(m)
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "method(" + strconv.Itoa(int(m)) + ")"
}

// ParseMethod maps a wire code back to its Method.
func ParseMethod(code int) (Method, bool) {
	m := Method(code)
	return m, m.Valid()
}

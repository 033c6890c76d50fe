// Package hooks defines the fixed catalog of interceptable time operations
// and the selection set choosing which of them are actually rewritten.
package hooks

// ID identifies one catalog entry. IDs are bits so that a Set is a plain
// bitmask, cheap to test on every intercepted call.
type ID uint32

const (
	Alarm ID = 1 << iota
	Clock
	ClockGettime
	ClockNanosleep
	EpollPwait
	EpollWait
	Futex
	Getitimer
	Gettimeofday
	Nanosleep
	Poll
	Ppoll
	Pselect
	Select
	Setitimer
	Sleep
	Time
	Ualarm
	Usleep

	last
)

// All selects every catalog entry.
const All Set = Set(last - 1)

// None selects no entries; every call passes through verbatim.
const None Set = 0

var names = map[ID]string{
	Alarm:          "alarm",
	Clock:          "clock",
	ClockGettime:   "clock_gettime",
	ClockNanosleep: "clock_nanosleep",
	EpollPwait:     "epoll_pwait",
	EpollWait:      "epoll_wait",
	Futex:          "futex",
	Getitimer:      "getitimer",
	Gettimeofday:   "gettimeofday",
	Nanosleep:      "nanosleep",
	Poll:           "poll",
	Ppoll:          "ppoll",
	Pselect:        "pselect",
	Select:         "select",
	Setitimer:      "setitimer",
	Sleep:          "sleep",
	Time:           "time",
	Ualarm:         "ualarm",
	Usleep:         "usleep",
}

var byName = func() map[string]ID {
	m := make(map[string]ID, len(names))
	for id, name := range names {
		m[name] = id
	}

	return m
}()

// String returns the catalog name of id, matching the names accepted by
// Lookup.
func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}

	return "unknown"
}

// Lookup resolves a catalog name to its ID. Matching is case-sensitive.
func Lookup(name string) (ID, bool) {
	id, ok := byName[name]

	return id, ok
}

// Set is a selection of catalog entries.
type Set uint32

// Has reports whether id is selected.
func (s Set) Has(id ID) bool {
	return s&Set(id) != 0
}

// With returns s with id selected.
func (s Set) With(id ID) Set {
	return s | Set(id)
}

// Without returns s with id removed.
func (s Set) Without(id ID) Set {
	return s &^ Set(id)
}

// Names returns the selected entry names in catalog order.
func (s Set) Names() []string {
	out := make([]string, 0, len(names))
	for id := Alarm; id < last; id <<= 1 {
		if s.Has(id) {
			out = append(out, id.String())
		}
	}

	return out
}

package lane

import "fmt"

// OpponentPolicy is the behavioral profile of the simulated enemy laner.
// A closed enumeration: the simulator dispatches on it once per action and
// there is no user-extensible behavior.
type OpponentPolicy int

const (
	PolicyAverage OpponentPolicy = iota // Plays safely, trades occasionally
	PolicyOptimal                       // Punishes every mistake
	PolicyPassive                       // Mostly farms
)

var policyLabels = map[OpponentPolicy]string{
	PolicyAverage: "average",
	PolicyOptimal: "optimal",
	PolicyPassive: "passive",
}

func (p OpponentPolicy) String() string { return policyLabels[p] }

// ParseOpponentPolicy validates a policy name at the boundary. Unknown names
// are an error here; inside the simulator the enumeration is closed.
func ParseOpponentPolicy(name string) (OpponentPolicy, error) {
	for p, label := range policyLabels {
		if label == name {
			return p, nil
		}
	}
	return PolicyAverage, fmt.Errorf("unknown opponent policy %q (want average, optimal or passive)", name)
}

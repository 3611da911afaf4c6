package calendar

// Pairing is one unordered meeting of two teams. Team1ID is the earlier team
// in the input order.
type Pairing struct {
	Team1ID int
	Team2ID int
}

// RoundRobinPairings returns all n(n-1)/2 pairings in nested index order:
// (0,1), (0,2), ..., (0,n-1), (1,2), ...
// Consecutive slots for one team and rest balancing are not considered.
func RoundRobinPairings(teamIDs []int) []Pairing {
	n := len(teamIDs)
	if n < 2 {
		return []Pairing{}
	}
	pairings := make([]Pairing, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairings = append(pairings, Pairing{Team1ID: teamIDs[i], Team2ID: teamIDs[j]})
		}
	}
	return pairings
}

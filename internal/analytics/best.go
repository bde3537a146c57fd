// ABOUTME: PR best-value reduction and history grouping over log snapshots.
// ABOUTME: Pure functions; no storage access, ties keep the first candidate.
package analytics

import (
	"fmt"
	"sort"

	"github.com/harperreed/wodtrack/internal/models"
)

// BestOverall reduces a log set to the single best performance under the
// exercise's score type, optionally restricted to one variant.
// Returns nil when no log survives the filter. Ties keep the
// first-encountered log in input order.
func BestOverall(logs []*models.PerformanceLog, st models.ScoreType, variant *models.Variant) *models.PerformanceLog {
	var best *models.PerformanceLog
	for _, l := range logs {
		if variant != nil && l.Variant != *variant {
			continue
		}
		if best == nil || st.BetterThan(l.Score, best.Score) {
			best = l
		}
	}
	return best
}

// BestByDistance buckets distance-carrying logs by their exact distance
// marker and keeps the fastest time in each bucket. Logs without a
// distance are ignored.
func BestByDistance(logs []*models.PerformanceLog) map[float64]*models.PerformanceLog {
	best := make(map[float64]*models.PerformanceLog)
	for _, l := range logs {
		if l.DistanceMeters == nil {
			continue
		}
		d := *l.DistanceMeters
		if cur, ok := best[d]; !ok || l.Score < cur.Score {
			best[d] = l
		}
	}
	return best
}

// BestByTimeForCalories buckets calorie-carrying logs by their exact
// elapsed time (the normalized score) and keeps the highest calorie
// count in each bucket. More calories in the same window is better; a
// calorie tie keeps the existing entry.
func BestByTimeForCalories(logs []*models.PerformanceLog) map[float64]*models.PerformanceLog {
	best := make(map[float64]*models.PerformanceLog)
	for _, l := range logs {
		if l.Calories == nil {
			continue
		}
		t := l.Score
		if cur, ok := best[t]; !ok || *l.Calories > *cur.Calories {
			best[t] = l
		}
	}
	return best
}

// BestForDualMetric computes the single best log across all distance and
// calorie buckets of a distance+calories exercise. Buckets are visited
// in ascending key order so the first-wins tie rule stays deterministic.
func BestForDualMetric(logs []*models.PerformanceLog, st models.ScoreType) *models.PerformanceLog {
	byDistance := BestByDistance(logs)
	byCalTime := BestByTimeForCalories(logs)

	var best *models.PerformanceLog
	for _, l := range inKeyOrder(byDistance) {
		if best == nil || st.BetterThan(l.Score, best.Score) {
			best = l
		}
	}
	for _, l := range inKeyOrder(byCalTime) {
		if best == nil || st.BetterThan(l.Score, best.Score) {
			best = l
		}
	}
	return best
}

func inKeyOrder(m map[float64]*models.PerformanceLog) []*models.PerformanceLog {
	keys := make([]float64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	out := make([]*models.PerformanceLog, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

// GroupKind identifies which key a history group is partitioned on.
type GroupKind string

const (
	GroupByDistance    GroupKind = "distance"
	GroupByCalorieTime GroupKind = "calorie_time"
	GroupByReps        GroupKind = "reps"
	GroupByVariant     GroupKind = "variant"
)

// LogGroup is one partition of an exercise's history. Logs are ordered
// best-in-group first, then by date descending.
type LogGroup struct {
	Kind        GroupKind
	Distance    float64        // set for GroupByDistance
	TimeSeconds float64        // set for GroupByCalorieTime
	Reps        int            // set for GroupByReps
	Variant     models.Variant // set for GroupByVariant
	Label       string
	Best        *models.PerformanceLog
	Logs        []*models.PerformanceLog
}

// GroupLogs partitions an exercise's history for display. The grouping
// key follows the exercise: distance marker and/or calorie time window
// for metric-tagged monostructural work, rep scheme for load work, and
// variant for everything else. Groups with a best-in-group winner sort
// that log first; the rest follow by date descending.
func GroupLogs(logs []*models.PerformanceLog, ex *models.Exercise) []LogGroup {
	if len(logs) == 0 {
		return nil
	}

	switch {
	case ex.MetricKind.SupportsDistance() || ex.MetricKind.SupportsCalories():
		return groupByMetric(logs, ex)
	case ex.ScoreType == models.ScoreLoad:
		return groupByReps(logs, ex.ScoreType)
	default:
		return groupByVariant(logs, ex.ScoreType)
	}
}

func groupByMetric(logs []*models.PerformanceLog, ex *models.Exercise) []LogGroup {
	var distKeys, timeKeys []float64
	distGroups := make(map[float64][]*models.PerformanceLog)
	timeGroups := make(map[float64][]*models.PerformanceLog)

	for _, l := range logs {
		switch {
		case ex.MetricKind.SupportsDistance() && l.DistanceMeters != nil:
			d := *l.DistanceMeters
			if _, ok := distGroups[d]; !ok {
				distKeys = append(distKeys, d)
			}
			distGroups[d] = append(distGroups[d], l)
		case ex.MetricKind.SupportsCalories() && l.Calories != nil:
			t := l.Score
			if _, ok := timeGroups[t]; !ok {
				timeKeys = append(timeKeys, t)
			}
			timeGroups[t] = append(timeGroups[t], l)
		}
	}
	sort.Float64s(distKeys)
	sort.Float64s(timeKeys)

	var groups []LogGroup
	for _, d := range distKeys {
		members := distGroups[d]
		best := bestIn(members, func(a, b *models.PerformanceLog) bool { return a.Score < b.Score })
		groups = append(groups, LogGroup{
			Kind:     GroupByDistance,
			Distance: d,
			Label:    fmt.Sprintf("%gm", d),
			Best:     best,
			Logs:     orderGroup(members, best),
		})
	}
	for _, t := range timeKeys {
		members := timeGroups[t]
		best := bestIn(members, func(a, b *models.PerformanceLog) bool {
			return a.Calories != nil && b.Calories != nil && *a.Calories > *b.Calories
		})
		groups = append(groups, LogGroup{
			Kind:        GroupByCalorieTime,
			TimeSeconds: t,
			Label:       fmt.Sprintf("cals in %s", models.FormatScore(t, models.ScoreTime)),
			Best:        best,
			Logs:        orderGroup(members, best),
		})
	}
	return groups
}

func groupByReps(logs []*models.PerformanceLog, st models.ScoreType) []LogGroup {
	var keys []int
	byReps := make(map[int][]*models.PerformanceLog)
	for _, l := range logs {
		reps := 0
		if l.Reps != nil {
			reps = *l.Reps
		}
		if _, ok := byReps[reps]; !ok {
			keys = append(keys, reps)
		}
		byReps[reps] = append(byReps[reps], l)
	}
	sort.Ints(keys)

	var groups []LogGroup
	for _, reps := range keys {
		members := byReps[reps]
		best := bestIn(members, func(a, b *models.PerformanceLog) bool { return st.BetterThan(a.Score, b.Score) })
		label := "unspecified reps"
		if reps > 0 {
			label = fmt.Sprintf("%d-rep max", reps)
		}
		groups = append(groups, LogGroup{
			Kind:  GroupByReps,
			Reps:  reps,
			Label: label,
			Best:  best,
			Logs:  orderGroup(members, best),
		})
	}
	return groups
}

func groupByVariant(logs []*models.PerformanceLog, st models.ScoreType) []LogGroup {
	var keys []models.Variant
	byVariant := make(map[models.Variant][]*models.PerformanceLog)
	for _, l := range logs {
		if _, ok := byVariant[l.Variant]; !ok {
			keys = append(keys, l.Variant)
		}
		byVariant[l.Variant] = append(byVariant[l.Variant], l)
	}
	sort.Slice(keys, func(i, j int) bool {
		return models.VariantRank(keys[i]) < models.VariantRank(keys[j])
	})

	var groups []LogGroup
	for _, v := range keys {
		members := byVariant[v]
		best := bestIn(members, func(a, b *models.PerformanceLog) bool { return st.BetterThan(a.Score, b.Score) })
		label := string(v)
		if v == "" {
			label = "unspecified"
		}
		groups = append(groups, LogGroup{
			Kind:    GroupByVariant,
			Variant: v,
			Label:   label,
			Best:    best,
			Logs:    orderGroup(members, best),
		})
	}
	return groups
}

// bestIn reduces with a strict better-than predicate, so equal
// candidates never displace the incumbent.
func bestIn(logs []*models.PerformanceLog, better func(a, b *models.PerformanceLog) bool) *models.PerformanceLog {
	var best *models.PerformanceLog
	for _, l := range logs {
		if best == nil || better(l, best) {
			best = l
		}
	}
	return best
}

// orderGroup puts the group winner first and the rest in date-descending
// order.
func orderGroup(members []*models.PerformanceLog, best *models.PerformanceLog) []*models.PerformanceLog {
	rest := make([]*models.PerformanceLog, 0, len(members))
	for _, l := range members {
		if l != best {
			rest = append(rest, l)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].RecordedAt.After(rest[j].RecordedAt)
	})
	out := make([]*models.PerformanceLog, 0, len(members))
	if best != nil {
		out = append(out, best)
	}
	return append(out, rest...)
}

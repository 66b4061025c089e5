package interview

import (
	"strings"
	"unicode/utf8"
)

const (
	// EntryLevel is the experience value that marks a first-time job seeker.
	EntryLevel = "신입"

	baseQualityScore      = 5
	maxQualityScore       = 10
	richSkillsThreshold   = 50
	longProjectsThreshold = 100
)

// QualityScore rates how much usable signal the profile carries, from 5 to 10.
func QualityScore(p Profile) int {
	score := baseQualityScore
	if !isBlank(p.ProjectExperience) {
		score += 2
	}
	if utf8.RuneCountInString(p.CombinedSkills()) > richSkillsThreshold {
		score += 2
	}
	if !isBlank(p.LearningGoals) {
		score++
	}
	if score > maxQualityScore {
		score = maxQualityScore
	}
	return score
}

// DeterminePriority is HIGH for entry-level candidates or long project histories.
func DeterminePriority(p Profile) Priority {
	if strings.TrimSpace(p.Experience) == EntryLevel {
		return PriorityHigh
	}
	if utf8.RuneCountInString(p.ProjectExperience) > longProjectsThreshold {
		return PriorityHigh
	}
	return PriorityMedium
}

// ExtractKeywords returns position, experience and two static focus labels.
func ExtractKeywords(p Profile) []string {
	return []string{p.Position, p.Experience, "면접 준비", "기술 스킬"}
}

package uid

import (
	"strconv"

	"github.com/google/uuid"
)

// GenerateRoundID returns a random identifier for one round of play,
// used to correlate log lines.
func GenerateRoundID() string {
	return uuid.NewString()
}

// GenerateMatchID prefixes an arena game index with a short random tag.
func GenerateMatchID(index int) string {
	return uuid.NewString()[:8] + "-" + strconv.Itoa(index)
}

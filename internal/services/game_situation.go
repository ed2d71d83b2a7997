package services

import (
	"github.com/gridironlabs/simcore/internal/models"
)

// Late-game classification thresholds.
const (
	lateCloseWindowSeconds = 180
	lateCloseMaxMargin     = 1
	blowoutMinMargin       = 2
	blowoutHalf            = 2
)

// ClassifySituation maps live score and clock state to a game situation from
// one team's perspective.
//
// The precedence is load-bearing: a late close game always classifies as
// LateClose, even when the blowout conditions also hold, because clutch
// situational effects override blowout conservatism.
func ClassifySituation(ownScore, oppScore, elapsedSeconds, maxSeconds, half int) models.GameSituation {
	margin := ownScore - oppScore
	absMargin := margin
	if absMargin < 0 {
		absMargin = -absMargin
	}

	remaining := maxSeconds - elapsedSeconds
	if remaining <= lateCloseWindowSeconds && absMargin <= lateCloseMaxMargin {
		return models.SituationLateClose
	}

	if half == blowoutHalf && absMargin >= blowoutMinMargin {
		if margin > 0 {
			return models.SituationWinningBig
		}
		return models.SituationLosingBig
	}

	return models.SituationNormal
}

// ClassifyBoth evaluates one match state and returns the home and away
// perspectives. A blowout classifies as WinningBig for the leading team and
// LosingBig for the trailing team; the symmetric situations are shared.
func ClassifyBoth(homeScore, awayScore, elapsedSeconds, maxSeconds, half int) (home, away models.GameSituation) {
	home = ClassifySituation(homeScore, awayScore, elapsedSeconds, maxSeconds, half)
	away = ClassifySituation(awayScore, homeScore, elapsedSeconds, maxSeconds, half)
	return home, away
}

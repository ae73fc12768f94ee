package common

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x57F287 // Green
	ColorDanger  = 0xED4245 // Red
	ColorWarning = 0xFEE75C // Yellow
	ColorInfo    = 0x3498DB // Blue
	ColorFun     = 0x9B59B6 // Purple
	ColorSpotify = 0x1DB954 // Spotify green
)

// Betting constants
const (
	MinBetAmount      = 1
	BetSessionTimeout = 60 // seconds until an unaccepted bet expires
)

// Leaderboard constants
const (
	LeaderboardPageSize = 10
	LeaderboardTimeout  = 120 // seconds until pager buttons stop responding
)

package util

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogPathfinding | LogRange | LogTargeting | LogTurnState | LogWorld | LogIO

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelDebug
	LogLevelInfo
)

type LogCategory int

const (
	LogPathfinding LogCategory = 1 << iota
	LogRange
	LogTargeting
	LogTurnState
	LogWorld
	LogScript
	LogIO
)

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	println(txt)
}

func LogPathDebug(txt string) {
	log(LogPathfinding, LogLevelDebug, txt)
}

func LogPathError(txt string) {
	log(LogPathfinding, LogLevelError, txt)
}

func LogRangeDebug(txt string) {
	log(LogRange, LogLevelDebug, txt)
}

func LogRangeError(txt string) {
	log(LogRange, LogLevelError, txt)
}

func LogTargetDebug(txt string) {
	log(LogTargeting, LogLevelDebug, txt)
}

func LogTargetError(txt string) {
	log(LogTargeting, LogLevelError, txt)
}

func LogStateInfo(txt string) {
	log(LogTurnState, LogLevelInfo, txt)
}

func LogStateDebug(txt string) {
	log(LogTurnState, LogLevelDebug, txt)
}

func LogWorldInfo(txt string) {
	log(LogWorld, LogLevelInfo, txt)
}

func LogWorldDebug(txt string) {
	log(LogWorld, LogLevelDebug, txt)
}

func LogScriptDebug(txt string) {
	log(LogScript, LogLevelDebug, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}

package constants

// TicksPerSecond is the fixed ebiten update rate.
const TicksPerSecond = 60

// StepPerTick is how many step units one tick advances animations by. Camera
// rotation lasts 30 ticks and the list focus fade 5 ticks at this rate.
const StepPerTick = 100

// StepsPerSecond converts step units to wall-clock seconds.
const StepsPerSecond = StepPerTick * TicksPerSecond

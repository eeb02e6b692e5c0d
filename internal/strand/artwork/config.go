package artwork

// Config carries the generation constants. They are part of the output
// contract: the same seed under a different config is a different
// artifact, so production always runs DefaultConfig.
type Config struct {
	CanvasWidth  int64
	CanvasHeight int64

	MinSharpness int64
	MaxSharpness int64
}

func DefaultConfig() Config {
	return Config{
		CanvasWidth:  1024,
		CanvasHeight: 1024,
		MinSharpness: 1,
		MaxSharpness: 7,
	}
}

package domain

type messageType byte

const (
	GameFinished = messageType(iota)
	BatchFinished
)

func (t messageType) String() string {
	switch t {
	case GameFinished:
		return "game_finished"
	case BatchFinished:
		return "batch_finished"
	default:
		return "unknown"
	}
}

type Message struct {
	Type    messageType
	Payload any
}

type HealthCheckResponse struct {
	Subscribers int
}

package model

import "fmt"

// Channel is the communication medium an inbound message arrived on.
// It only influences fallback routing when no specific intent is detected.
type Channel string

const (
	ChannelChat  Channel = "chat"
	ChannelEmail Channel = "email"
	ChannelCall  Channel = "call"
)

// DefaultChannel is assumed when the payload omits the channel field.
const DefaultChannel = ChannelChat

// ParseChannel validates a raw channel value. Empty input maps to DefaultChannel;
// any other value outside the closed set is rejected.
func ParseChannel(raw string) (Channel, error) {
	switch Channel(raw) {
	case "":
		return DefaultChannel, nil
	case ChannelChat, ChannelEmail, ChannelCall:
		return Channel(raw), nil
	default:
		return "", fmt.Errorf("unknown channel %q", raw)
	}
}

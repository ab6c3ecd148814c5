package mqtt

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/mosa3ed/launchicon/internal/config"
)

const timeout = 5 * time.Second

// DefaultClientID is used when the config leaves client_id empty.
const DefaultClientID = "launchicon"

// Generated is the payload published after an icon was written.
type Generated struct {
	Source string `json:"source"`
	Output string `json:"output"`
	Size   int    `json:"size"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Payload encodes g as the JSON message body.
func (g Generated) Payload() ([]byte, error) {
	return json.Marshal(g)
}

// Publish connects to the configured broker, publishes message to the
// configured topic, and disconnects. Each invocation creates a fresh
// connection. Username and password are expanded with os.ExpandEnv so
// secrets can live in the environment.
func Publish(cfg config.MQTT, message []byte) error {
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = DefaultClientID
	}
	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(clientID).
		SetConnectTimeout(timeout)

	if u := os.ExpandEnv(cfg.Username); u != "" {
		opts.SetUsername(u)
	}
	if p := os.ExpandEnv(cfg.Password); p != "" {
		opts.SetPassword(p)
	}

	client := pahomqtt.NewClient(opts)
	tok := client.Connect()
	if !tok.WaitTimeout(timeout) {
		return fmt.Errorf("mqtt: connect timeout")
	}
	if tok.Error() != nil {
		return fmt.Errorf("mqtt: connect: %w", tok.Error())
	}
	defer client.Disconnect(250)

	pub := client.Publish(cfg.Topic, cfg.QoS, cfg.Retain, message)
	if !pub.WaitTimeout(timeout) {
		return fmt.Errorf("mqtt: publish timeout")
	}
	if pub.Error() != nil {
		return fmt.Errorf("mqtt: publish: %w", pub.Error())
	}
	return nil
}

// PublishGenerated publishes g as JSON.
func PublishGenerated(cfg config.MQTT, g Generated) error {
	body, err := g.Payload()
	if err != nil {
		return fmt.Errorf("mqtt: encode: %w", err)
	}
	return Publish(cfg, body)
}

// Package checkpoint streams network layers over a reader/writer pair
package checkpoint

import (
	"encoding/gob"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/patrickTumulty/mlrust/nn"
	"github.com/patrickTumulty/mlrust/utils"
)

func init() {
	// Register types for gob encoding
	gob.Register(LayerPayload{})
}

// MessageType defines message types for the checkpoint stream
type MessageType int

const (
	MsgLayer MessageType = iota
	MsgDone
	MsgError
)

// Message represents a message in the checkpoint stream
type Message struct {
	Type    MessageType
	Payload interface{}
}

// LayerPayload carries one layer's weights and biases
type LayerPayload struct {
	Index   int
	Weights *utils.WeightData
	Biases  *utils.WeightData
}

// Protocol handles checkpoint stream communication
type Protocol struct {
	encoder *gob.Encoder
	decoder *gob.Decoder
}

// NewProtocol creates a new protocol handler
func NewProtocol(r io.Reader, w io.Writer) *Protocol {
	return &Protocol{
		encoder: gob.NewEncoder(w),
		decoder: gob.NewDecoder(r),
	}
}

// Send sends a message
func (p *Protocol) Send(msg *Message) error {
	return p.encoder.Encode(msg)
}

// Receive receives a message
func (p *Protocol) Receive() (*Message, error) {
	var msg Message
	if err := p.decoder.Decode(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SendLayer sends one layer's weights and biases
func (p *Protocol) SendLayer(index int, weights, biases mat.Matrix) error {
	return p.Send(&Message{
		Type: MsgLayer,
		Payload: LayerPayload{
			Index:   index,
			Weights: utils.MatrixToWeightData(fmt.Sprintf("layer_%d.weight", index), weights),
			Biases:  utils.MatrixToWeightData(fmt.Sprintf("layer_%d.bias", index), biases),
		},
	})
}

// SendDone signals completion
func (p *Protocol) SendDone() error {
	return p.Send(&Message{Type: MsgDone})
}

// SendError sends an error message
func (p *Protocol) SendError(err error) error {
	return p.Send(&Message{
		Type:    MsgError,
		Payload: err.Error(),
	})
}

// ReceiveLayer receives a layer payload. It returns io.EOF once the done
// marker arrives.
func (p *Protocol) ReceiveLayer() (*LayerPayload, error) {
	msg, err := p.Receive()
	if err != nil {
		return nil, err
	}
	if msg.Type == MsgError {
		return nil, fmt.Errorf("remote error: %v", msg.Payload)
	}
	if msg.Type == MsgDone {
		return nil, io.EOF
	}
	if msg.Type != MsgLayer {
		return nil, fmt.Errorf("expected layer message, got %d", msg.Type)
	}
	payload, ok := msg.Payload.(LayerPayload)
	if !ok {
		return nil, fmt.Errorf("invalid layer payload type")
	}
	return &payload, nil
}

// Save writes every layer of the network to w, ending with a done marker.
func Save(w io.Writer, network *nn.Network) error {
	p := &Protocol{encoder: gob.NewEncoder(w)}
	for i, layer := range network.Layers() {
		if err := p.SendLayer(i, layer.Weights(), layer.Biases()); err != nil {
			return fmt.Errorf("sending layer %d: %w", i, err)
		}
	}
	return p.SendDone()
}

// Load reads layers from r until the done marker and rebuilds the network.
func Load(r io.Reader) (*nn.Network, error) {
	p := &Protocol{decoder: gob.NewDecoder(r)}
	var weights, biases []*mat.Dense
	for {
		payload, err := p.ReceiveLayer()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		w, err := utils.WeightDataToMatrix(payload.Weights)
		if err != nil {
			return nil, err
		}
		b, err := utils.WeightDataToMatrix(payload.Biases)
		if err != nil {
			return nil, err
		}
		for len(weights) <= payload.Index {
			weights = append(weights, nil)
			biases = append(biases, nil)
		}
		weights[payload.Index] = w
		biases[payload.Index] = b
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("checkpoint stream holds no layers")
	}
	for i := range weights {
		if weights[i] == nil {
			return nil, fmt.Errorf("checkpoint stream missing layer %d", i)
		}
	}
	return nn.From(weights, biases), nil
}

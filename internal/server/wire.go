package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/maestro"
	"github.com/gogpu/maestro/internal/cache"
)

// errBadRequest marks request decoding and validation failures.
var errBadRequest = errors.New("bad request")

// cardPayload is the JSON form of one card. Older clients send glow,
// frame and target_card instead of kindled, frame_type and custom_image.
type cardPayload struct {
	ID          uint32  `json:"id"`
	Variant     uint8   `json:"variant"`
	Dye         *uint32 `json:"dye"`
	Kindled     bool    `json:"kindled"`
	Glow        bool    `json:"glow"`
	FrameType   frameID `json:"frame_type"`
	Frame       frameID `json:"frame"`
	OffsetX     *int    `json:"offset_x"`
	OffsetY     *int    `json:"offset_y"`
	CustomImage bool    `json:"custom_image"`
	TargetCard  bool    `json:"target_card"`
	SaveName    string  `json:"save_name"`
}

// batchPayload is the JSON form of a fan or album.
type batchPayload struct {
	Cards    []cardPayload `json:"cards"`
	SaveName string        `json:"save_name"`
}

// frameID accepts a frame type as a JSON string or a non-negative integer.
type frameID string

func (f *frameID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = frameID(s)
		return nil
	}
	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("frame type must be a string or an integer: %s", data)
	}
	*f = frameID(strconv.FormatUint(n, 10))
	return nil
}

// request converts the payload into a render request.
func (p cardPayload) request() maestro.CardRequest {
	req := maestro.CardRequest{
		ID:        p.ID,
		Variant:   p.Variant,
		Dye:       maestro.DefaultDye,
		Modifier:  p.Kindled || p.Glow,
		FrameType: string(p.FrameType),
		OffsetX:   p.OffsetX,
		OffsetY:   p.OffsetY,
		Custom:    p.CustomImage || p.TargetCard,
	}
	if req.FrameType == "" {
		req.FrameType = string(p.Frame)
	}
	if p.Dye != nil {
		req.Dye = *p.Dye
	}
	return req
}

// decodeHash decodes a base64 (standard alphabet, padding optional) JSON
// document into v.
func decodeHash(hash string, v any) error {
	raw, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(hash, "="))
	if err != nil {
		return fmt.Errorf("%w: invalid hash: %w", errBadRequest, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: hash contains invalid data: %w", errBadRequest, err)
	}
	return nil
}

// decodeCard decodes and validates a single card request.
func decodeCard(hash string) (maestro.CardRequest, string, error) {
	var p cardPayload
	if err := decodeHash(hash, &p); err != nil {
		return maestro.CardRequest{}, "", err
	}
	req := p.request()
	if err := validateCard(req); err != nil {
		return maestro.CardRequest{}, "", err
	}
	if err := validateSaveName(p.SaveName); err != nil {
		return maestro.CardRequest{}, "", err
	}
	return req, p.SaveName, nil
}

// decodeBatch decodes and validates a fan or album request.
func decodeBatch(hash string, maxBatch int) (maestro.BatchRequest, string, error) {
	var p batchPayload
	if err := decodeHash(hash, &p); err != nil {
		return nil, "", err
	}
	switch {
	case len(p.Cards) == 0:
		return nil, "", fmt.Errorf("%w: no cards", errBadRequest)
	case maxBatch > 0 && len(p.Cards) > maxBatch:
		return nil, "", fmt.Errorf("%w: %d cards, at most %d allowed", errBadRequest, len(p.Cards), maxBatch)
	}

	batch := make(maestro.BatchRequest, len(p.Cards))
	for i, c := range p.Cards {
		batch[i] = c.request()
		if err := validateCard(batch[i]); err != nil {
			return nil, "", fmt.Errorf("card %d: %w", i, err)
		}
	}
	if err := validateSaveName(p.SaveName); err != nil {
		return nil, "", err
	}
	return batch, p.SaveName, nil
}

func validateCard(req maestro.CardRequest) error {
	if req.FrameType == "" {
		return fmt.Errorf("%w: frame_type is required", errBadRequest)
	}
	return nil
}

func validateSaveName(name string) error {
	if name == "" {
		return nil
	}
	if err := cache.ValidName(name); err != nil {
		return fmt.Errorf("%w: save_name: %w", errBadRequest, err)
	}
	return nil
}

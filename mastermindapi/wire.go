package mastermindapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Wire payload shapes for the three game operations. The field tags are
// the contract; the Go names are local convention.

// createGameResponse is the success body of the create-game call.
type createGameResponse struct {
	GameID string `json:"game_id"`
}

// guessRequest is the body of the submit-guess call.
type guessRequest struct {
	GameID string `json:"game_id"`
	Guess  string `json:"guess"`
}

// guessResponse is the success body of the submit-guess call. Pointer
// fields distinguish an absent key from a legitimate zero count.
type guessResponse struct {
	Black *int `json:"black"`
	White *int `json:"white"`
}

// errorResponse is the body the server attaches to 4xx/5xx statuses.
type errorResponse struct {
	Error string `json:"error"`
}

// encodeGuessRequest renders the submit-guess body.
func encodeGuessRequest(gameID, guess string) (io.Reader, error) {
	payload, err := json.Marshal(guessRequest{GameID: gameID, Guess: guess})
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(payload), nil
}

// decodeGameID parses a create-game success body. Any schema mismatch,
// including a missing or empty game_id, is a decoding failure: the HTTP
// layer succeeded but the payload is not what the contract promises.
func decodeGameID(r io.Reader) (string, error) {
	var body createGameResponse
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return "", newJSONDecodingError(err)
	}
	if body.GameID == "" {
		return "", newJSONDecodingError(errors.New("missing game_id in response body"))
	}
	return body.GameID, nil
}

// decodeScore parses a submit-guess success body. A missing or negative
// peg count is a schema violation, not a zero score.
func decodeScore(r io.Reader) (Score, error) {
	var body guessResponse
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return Score{}, newJSONDecodingError(err)
	}
	if body.Black == nil || body.White == nil {
		return Score{}, newJSONDecodingError(errors.New("missing black/white in response body"))
	}
	if *body.Black < 0 || *body.White < 0 {
		return Score{}, newJSONDecodingError(errors.New("negative peg count in response body"))
	}
	return Score{Black: *body.Black, White: *body.White}, nil
}

// errorMessage extracts the server's own message from an error body,
// falling back to def when the body carries none. It never fails: on an
// unreadable or unparsable body the default stands in.
func errorMessage(r io.Reader, def string) string {
	raw, err := io.ReadAll(r)
	if err != nil {
		return def
	}
	var body errorResponse
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		return def
	}
	return body.Error
}

// Package mastermindapi provides an HTTP client for the remote Mastermind
// game service.
//
// This package is the Go port of the API layer of the Swift Mastermind
// CLI, designed to be contract-compatible while following Go idioms: the
// Swift Result<T, GameError> returns become (T, error) pairs carrying a
// *GameError, and URLSession becomes net/http.
//
// # Service Contract
//
// The service owns the secret code and all scoring; the client only moves
// JSON over HTTP:
//
//	POST   /game             -> 200 {"game_id": "..."}
//	POST   /guess            -> 200 {"black": n, "white": n}
//	       body: {"game_id": "...", "guess": "1234"}
//	DELETE /game/{game_id}   -> 204
//
// Error statuses carry {"error": "..."} bodies. The mapping from status
// codes onto the GameError taxonomy is documented per method on Client.
//
// # Basic Usage
//
// Create a client and play one round:
//
//	client := mastermindapi.NewClient("")
//
//	gameID, err := client.CreateGame(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.DeleteGame(ctx, gameID)
//
//	if !mastermindapi.ValidGuess("1234") {
//	    // reject locally, never submit
//	}
//	score, err := client.SubmitGuess(ctx, gameID, "1234")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if score.IsWin() {
//	    fmt.Println("cracked it")
//	}
//
// # Error Handling
//
// Every failure is a typed error. Consumers branch on the kind:
//
//	if ge, ok := mastermindapi.AsGameError(err); ok {
//	    switch ge.Kind {
//	    case mastermindapi.ErrKindNetwork:
//	        // connectivity, nothing reached the server
//	    case mastermindapi.ErrKindAPI:
//	        fmt.Println(ge.Message) // the server's own words
//	    }
//	}
//
// # Thread Safety
//
// Client request methods are safe for concurrent use. Configuration
// setters (SetLogger, SetTimeout) belong in setup code before the first
// request.
package mastermindapi

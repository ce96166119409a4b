package synthetic

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/harborfleet/event-gateway/internal/game"
)

// Body is a fully-populated synthetic event submission. Validate never
// returns a partial one: every field is either caller-provided and checked,
// or filled from a generated default.
type Body struct {
	Game   GameBody    `json:"game"`
	Match  MatchBody   `json:"match"`
	Attack game.Attack `json:"attack"`
}

type GameBody struct {
	UUID string `json:"uuid"`
}

type MatchBody struct {
	UUID    string `json:"uuid"`
	PlayerA string `json:"playerA"`
	PlayerB string `json:"playerB"`
}

// FieldError is one field-level rejection.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field failure from one submission.
// Validation does not short-circuit, so a bad body reports all of its
// problems in one round trip.
type ValidationError struct {
	Info   string       `json:"info"`
	Fields []FieldError `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%s: %s", e.Info, strings.Join(msgs, "; "))
}

// Validator checks and completes synthetic event submissions. Identifier and
// username generation is injected so the defaulting pass stays deterministic
// under test; generators run only for fields the caller omitted.
type Validator struct {
	newUUID     func() string
	newUsername func() string
}

func NewValidator() *Validator {
	return &Validator{
		newUUID:     uuid.NewString,
		newUsername: game.RandomUsername,
	}
}

// partial carries the caller-provided fields between the validation pass and
// the defaulting pass. Nil means absent.
type partial struct {
	gameUUID  *string
	matchUUID *string
	playerA   *string
	playerB   *string
	attack    *partialAttack
}

type partialAttack struct {
	destroyed *bool
	hit       *bool
	origin    *[2]int
	shipType  *string
}

// Validate checks candidate in a single non-short-circuiting pass, then
// fills defaults over whatever the caller omitted. Fields outside the known
// shape are dropped.
func (v *Validator) Validate(candidate map[string]any) (Body, *ValidationError) {
	var errs []FieldError
	var p partial

	if obj, ok := section(candidate, "game", &errs); ok {
		p.gameUUID = stringField(obj, "game.uuid", "uuid", &errs)
	}

	if obj, ok := section(candidate, "match", &errs); ok {
		p.matchUUID = stringField(obj, "match.uuid", "uuid", &errs)
		p.playerA = stringField(obj, "match.playerA", "playerA", &errs)
		p.playerB = stringField(obj, "match.playerB", "playerB", &errs)
	}

	if obj, ok := section(candidate, "attack", &errs); ok {
		pa := partialAttack{
			destroyed: boolField(obj, "attack.destroyed", "destroyed", &errs),
			hit:       boolField(obj, "attack.hit", "hit", &errs),
			origin:    originField(obj, "attack.origin", &errs),
			shipType:  shipTypeField(obj, "attack.type", &errs),
		}
		p.attack = &pa
	}

	if len(errs) > 0 {
		return Body{}, &ValidationError{Info: "invalid event body", Fields: errs}
	}

	return v.fill(p), nil
}

// fill is the pure defaulting pass: it only touches gaps the validation pass
// left open.
func (v *Validator) fill(p partial) Body {
	var b Body

	b.Game.UUID = v.orGenerated(p.gameUUID, v.newUUID)
	b.Match.UUID = v.orGenerated(p.matchUUID, v.newUUID)
	b.Match.PlayerA = v.orGenerated(p.playerA, v.newUsername)
	b.Match.PlayerB = v.orGenerated(p.playerB, v.newUsername)

	b.Attack = game.DefaultAttack()
	if p.attack != nil {
		if p.attack.destroyed != nil {
			b.Attack.Destroyed = *p.attack.destroyed
		}
		if p.attack.hit != nil {
			b.Attack.Hit = *p.attack.hit
		}
		if p.attack.origin != nil {
			b.Attack.Origin = *p.attack.origin
		}
		if p.attack.shipType != nil {
			b.Attack.Type = game.ShipKind(*p.attack.shipType)
		}
	}

	return b
}

func (v *Validator) orGenerated(val *string, generate func() string) string {
	if val != nil {
		return *val
	}
	return generate()
}

// section returns candidate[name] as an object. Absent or null sections are
// not an error; they default wholesale.
func section(candidate map[string]any, name string, errs *[]FieldError) (map[string]any, bool) {
	val, ok := candidate[name]
	if !ok || val == nil {
		return nil, false
	}

	obj, ok := val.(map[string]any)
	if !ok {
		*errs = append(*errs, FieldError{Field: name, Message: "must be an object"})
		return nil, false
	}
	return obj, true
}

func stringField(obj map[string]any, path, key string, errs *[]FieldError) *string {
	val, ok := obj[key]
	if !ok || val == nil {
		return nil
	}

	s, ok := val.(string)
	if !ok {
		*errs = append(*errs, FieldError{Field: path, Message: "must be a string"})
		return nil
	}
	if s == "" {
		*errs = append(*errs, FieldError{Field: path, Message: "must not be empty"})
		return nil
	}
	return &s
}

// boolField accepts only strict JSON booleans, never truthy stand-ins.
func boolField(obj map[string]any, path, key string, errs *[]FieldError) *bool {
	val, ok := obj[key]
	if !ok || val == nil {
		return nil
	}

	b, ok := val.(bool)
	if !ok {
		*errs = append(*errs, FieldError{Field: path, Message: "must be a boolean"})
		return nil
	}
	return &b
}

func originField(obj map[string]any, path string, errs *[]FieldError) *[2]int {
	val, ok := obj["origin"]
	if !ok || val == nil {
		return nil
	}

	arr, ok := val.([]any)
	if !ok || len(arr) != 2 {
		*errs = append(*errs, FieldError{Field: path, Message: "must be an array of exactly two coordinates"})
		return nil
	}

	var out [2]int
	for i, item := range arr {
		f, ok := item.(float64)
		if !ok || f != math.Trunc(f) {
			*errs = append(*errs, FieldError{
				Field:   fmt.Sprintf("%s[%d]", path, i),
				Message: "must be an integer",
			})
			return nil
		}

		n := int(f)
		if n < 0 || n >= game.BoardSize {
			*errs = append(*errs, FieldError{
				Field:   fmt.Sprintf("%s[%d]", path, i),
				Message: fmt.Sprintf("must be in range [0,%d]", game.BoardSize-1),
			})
			return nil
		}
		out[i] = n
	}
	return &out
}

func shipTypeField(obj map[string]any, path string, errs *[]FieldError) *string {
	val, ok := obj["type"]
	if !ok || val == nil {
		return nil
	}

	s, ok := val.(string)
	if !ok {
		*errs = append(*errs, FieldError{Field: path, Message: "must be a string"})
		return nil
	}
	if !game.ValidShipKind(s) {
		*errs = append(*errs, FieldError{
			Field: path,
			Message: fmt.Sprintf("must be one of %s, %s, %s, %s",
				game.ShipCarrier, game.ShipBattleship, game.ShipDestroyer, game.ShipSubmarine),
		})
		return nil
	}
	return &s
}

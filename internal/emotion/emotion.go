package emotion

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind identifies one of the emotions the classifier is trained on
type Kind int

const (
	Unknown Kind = iota
	Joy
	Sadness
	Anger
	Fear
	Love
	Surprise
)

const (
	NeutralIcon  = "😐"
	NeutralColor = "#808080"
)

type details struct {
	code  string
	label string
	icon  string
	color string
}

var known = map[Kind]details{
	Joy:      {code: "joy", label: "Joyful", icon: "😊", color: "#FFD700"},
	Sadness:  {code: "sadness", label: "Sad", icon: "😢", color: "#4682B4"},
	Anger:    {code: "anger", label: "Angry", icon: "😠", color: "#DC143C"},
	Fear:     {code: "fear", label: "Fearful", icon: "😨", color: "#8B008B"},
	Love:     {code: "love", label: "Loving", icon: "❤️", color: "#FF1493"},
	Surprise: {code: "surprise", label: "Surprised", icon: "😮", color: "#FF8C00"},
}

var byCode = func() map[string]Kind {
	m := make(map[string]Kind, len(known))
	for k, d := range known {
		m[d.code] = k
	}
	return m
}()

// Emotion is either one of the known kinds or an unknown code reported by the classifier.
// The zero value is an unknown emotion with an empty code.
type Emotion struct {
	Kind Kind
	Code string
}

// Parse maps a classifier code to an Emotion. It never fails: codes outside
// the closed set come back as Unknown carrying the raw code.
func Parse(code string) Emotion {
	if k, ok := byCode[code]; ok {
		return Emotion{Kind: k, Code: code}
	}
	return Emotion{Kind: Unknown, Code: code}
}

// All returns the known emotions in canonical order
func All() []Emotion {
	return []Emotion{
		{Kind: Joy, Code: "joy"},
		{Kind: Sadness, Code: "sadness"},
		{Kind: Anger, Code: "anger"},
		{Kind: Fear, Code: "fear"},
		{Kind: Love, Code: "love"},
		{Kind: Surprise, Code: "surprise"},
	}
}

func (e Emotion) Known() bool {
	return e.Kind != Unknown
}

// Label returns the human label, or the raw code for unknown emotions.
func (e Emotion) Label() string {
	if d, ok := known[e.Kind]; ok {
		return d.label
	}
	return e.Code
}

// TitleLabel is Label with unknown codes title-cased ("confusion" -> "Confusion").
func (e Emotion) TitleLabel() string {
	if d, ok := known[e.Kind]; ok {
		return d.label
	}
	return cases.Title(language.Und, cases.NoLower).String(e.Code)
}

func (e Emotion) Icon() string {
	if d, ok := known[e.Kind]; ok {
		return d.icon
	}
	return NeutralIcon
}

// Color returns a hex colour for badges and the confidence bar
func (e Emotion) Color() string {
	if d, ok := known[e.Kind]; ok {
		return d.color
	}
	return NeutralColor
}

// Badge is the upper-cased code used in the recent analysis strip
func (e Emotion) Badge() string {
	return strings.ToUpper(e.Code)
}

func (e Emotion) String() string {
	return e.Code
}

package inference

import "context"

// Image es una foto lista para mandar al modelo.
type Image struct {
	Data     []byte
	MIMEType string
}

// Analyzer manda imagen + instrucción y devuelve el texto crudo que respondió el modelo.
type Analyzer interface {
	Analyze(ctx context.Context, img Image, instruction string) (string, error)
}

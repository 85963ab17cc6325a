package service

import (
	"math/rand"
	"strings"

	"github.com/AlexKurdi121/quizhub/internal/model"
)

// codeAlphabet deliberately keeps lowercase out: codes are read aloud and
// typed on phones.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeGeneratorService produces join codes. It makes no uniqueness guarantee
// itself; QuizService retries against existing codes on collision.
type CodeGeneratorService interface {
	Generate() string
}

type codeGeneratorService struct{}

func NewCodeGeneratorService() CodeGeneratorService {
	return &codeGeneratorService{}
}

func (s *codeGeneratorService) Generate() string {
	var b strings.Builder
	b.Grow(model.CodeLength)
	for i := 0; i < model.CodeLength; i++ {
		b.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}
	return b.String()
}

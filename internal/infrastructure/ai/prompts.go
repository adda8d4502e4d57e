// Package ai adaptadores REST hacia proveedores LLM (Gemini, Anthropic).
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
)

const (
	chatSystemPrompt = `Eres el asistente de un marketplace mayorista que conecta compradores con proveedores.
Responde en el idioma del usuario, de forma breve y práctica. Si te preguntan por pedidos,
pagos o inventario, explica cómo hacerlo desde la plataforma; no inventes datos de pedidos concretos.`

	recommendSystemPrompt = `Eres un motor de recomendaciones para compradores mayoristas.
Con las preferencias y el historial recibidos, devuelve ÚNICAMENTE un arreglo JSON (sin markdown) de hasta 5 elementos:
[{"name": "<nombre del producto>", "category": "<categoría>", "price": <precio unitario estimado, número>}]`

	describeSystemPrompt = `Eres redactor comercial de un marketplace mayorista.
Escribe una descripción de producto persuasiva de 2 a 4 frases, en español, sin títulos ni viñetas.`
)

// completer envía un prompt de sistema y un mensaje de usuario y devuelve el texto generado.
// wantJSON pide al proveedor salida JSON pura cuando lo soporta.
type completer interface {
	complete(ctx context.Context, system, user string, wantJSON bool) (string, error)
}

func chat(ctx context.Context, c completer, message string) (string, error) {
	out, err := c.complete(ctx, chatSystemPrompt, message, false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func recommend(ctx context.Context, c completer, preferences, history json.RawMessage) ([]dto.RecommendedProductDTO, error) {
	user := fmt.Sprintf("Preferencias: %s\nHistorial: %s", rawOrNull(preferences), rawOrNull(history))
	out, err := c.complete(ctx, recommendSystemPrompt, user, true)
	if err != nil {
		return nil, err
	}
	clean := extractJSON(out)
	if clean == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON en la respuesta del modelo (respuesta: %s)", out)
	}

	var recs []dto.RecommendedProductDTO
	if err := json.Unmarshal([]byte(clean), &recs); err != nil {
		// Algunos modelos envuelven el arreglo en un objeto.
		var wrapped struct {
			Recommendations []dto.RecommendedProductDTO `json:"recommendations"`
		}
		if err2 := json.Unmarshal([]byte(clean), &wrapped); err2 != nil {
			return nil, fmt.Errorf("AI: parsear recomendaciones: %w (JSON extraído: %s)", err, clean)
		}
		recs = wrapped.Recommendations
	}
	if recs == nil {
		recs = []dto.RecommendedProductDTO{}
	}
	return recs, nil
}

func describe(ctx context.Context, c completer, productName string, features []string) (string, error) {
	user := "Producto: " + productName
	if len(features) > 0 {
		user += "\nCaracterísticas:\n- " + strings.Join(features, "\n- ")
	}
	out, err := c.complete(ctx, describeSystemPrompt, user, false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func rawOrNull(r json.RawMessage) string {
	if len(r) == 0 {
		return "null"
	}
	return string(r)
}

// Capturan desde la primera apertura hasta el último cierre.
var (
	jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)
	jsonArrayRe  = regexp.MustCompile(`(?s)\[.*\]`)
)

// extractJSON extrae el primer valor JSON de un texto libre.
// Primero quita bloques markdown (```json … ```), luego toma el valor que abra antes.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "[") || strings.HasPrefix(text, "{") {
		return text
	}
	obj, arr := strings.Index(text, "{"), strings.Index(text, "[")
	if arr != -1 && (obj == -1 || arr < obj) {
		return strings.TrimSpace(jsonArrayRe.FindString(text))
	}
	return strings.TrimSpace(jsonObjectRe.FindString(text))
}

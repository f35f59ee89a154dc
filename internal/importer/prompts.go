package importer

// ParsePrompt instructs the model to emit a RecipeDraft-shaped JSON
// document and nothing else. The schema must stay in sync with
// domain.RecipeDraft's wire names.
const ParsePrompt = `You are a recipe parser. Parse the input into this JSON structure:
{
  "title": "string",
  "description": "string",
  "servings": number,
  "prep_min": number,
  "cook_min": number,
  "ingredients": [{"name": "string", "quantity": "string", "unit": "string", "note": "string"}],
  "steps": [{"order": number, "text": "string", "timer_sec": number (optional)}],
  "tags": ["string"],
  "memo": "string"
}
Step order is 1-based. "quantity" is free-form text so fractions like "1/2" survive.
Output ONLY raw JSON. No markdown. Translate to Japanese if the input is Japanese.`

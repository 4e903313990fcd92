package domain

// TranslationRequest is the inbound payload of the translate endpoint.
// The wire names are part of the public API contract and differ from the
// internal field names.
type TranslationRequest struct {
	Content        string `json:"text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// TranslationResult carries the translated text together with the language
// pair echoed back from the request. No check is made that the model
// actually answered in the requested language.
type TranslationResult struct {
	Translation string `json:"translation"`
	Source      string `json:"source"`
	Target      string `json:"target"`
}

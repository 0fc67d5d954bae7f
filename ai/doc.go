// Package ai defines the model-backed collaborators of the matching engine.
//
// An Embedder turns profile summaries into vectors at ingestion time and the
// question text into a query vector when the semantic fallback runs. A
// PhraseExtractor is the optional LLM alternative to the "who knows ..."
// pattern in package query. AIProvider bundles both with one lifecycle.
//
// ai/openai implements them over OpenAI-compatible APIs; ai/mock provides
// deterministic doubles for tests.
package ai

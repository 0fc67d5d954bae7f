// Package openai implements ai.AIProvider on top of langchaingo's OpenAI
// client, so it works with OpenAI itself and with compatible local servers
// such as Ollama, LocalAI or vLLM.
//
// The embedder serves both ingestion (profile summaries, batched) and the
// semantic fallback (one query at a time). The phrase extractor asks a chat
// model in JSON mode for {"skill_phrase": "..."} and repairs the common
// formatting slips of small models before giving up.
//
//	provider, err := openai.NewProvider(ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"),
//	    ai.WithEmbeddingModel("embeddinggemma"),
//	))
//	if err != nil {
//	    return err
//	}
//	defer provider.Close()
//
//	phrase, err := provider.PhraseExtractor().ExtractPhrase(ctx, "who knows Big Data and NLP?")
package openai

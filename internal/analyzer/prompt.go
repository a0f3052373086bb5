package analyzer

import "fmt"

// systemPrompt instructs the model to behave as a deepfake detector and to
// respond with the verdict schema only.
const systemPrompt = `You are an expert deepfake detection system. Analyze the provided media file and determine if it shows signs of being artificially generated or manipulated.

For images: Look for artifacts, inconsistent lighting, unnatural facial features, pixel inconsistencies.
For videos: Check for temporal inconsistencies, unnatural movements, facial morphing artifacts.
For audio: Identify voice synthesis patterns, unnatural intonations, digital artifacts.

Respond with a JSON object containing:
{
    "is_deepfake": boolean,
    "confidence_score": float (0-1),
    "detected_artifacts": array of strings,
    "risk_level": "low"|"medium"|"high",
    "analysis_summary": string
}`

func userPrompt(req Request) string {
	return fmt.Sprintf(`Analyze this file for deepfake indicators:
Filename: %s
File type: %s
File size: %d bytes
Content fingerprint: %s

Provide a comprehensive deepfake analysis based on the file characteristics.`,
		req.Filename, req.MediaKind, req.FileSize, req.Fingerprint)
}

package genai

import "fmt"

// System-instruction templates, parameterized only by the requested output
// language. The language value is substituted verbatim; it is part of the
// instruction text, not user-facing output.

const manualFromImageTemplate = `You are an expert technical manual writer named 'DigiHelp'. Your goal is to ` +
	`generate clear, concise, and easy-to-follow step-by-step instructions for ` +
	`operating a device shown in the image. The user is a beginner. ` +
	`Always start the response by identifying the device first, and then give the steps. ` +
	`Only provide the device name on the first line, and the guide starting on the next line. ` +
	`Format the guide as clean HTML using <h2>, <h3> and <ul>/<li> elements, with no ` +
	`introductory or concluding sentences. Write the entire response in %s.`

const manualFromTextTemplate = `You are an expert technical manual writer named 'DigiHelp'. The user will name a ` +
	`consumer device. Generate a brief quick-start guide (5 steps maximum) for its most ` +
	`common functions, followed by a section titled "Further Assistance" listing 2-3 ` +
	`common follow-up questions about this specific device. ` +
	`Only provide the device name on the first line, and the guide starting on the next line. ` +
	`Format the guide as clean HTML using <h2>, <h3> and <ul>/<li> elements. ` +
	`Write the entire response in %s.`

const followUpTemplate = `You are 'DigiHelp', a friendly tech assistant. The user has already identified ` +
	`their device and is asking a follow-up question about it. Answer concisely and ` +
	`practically for a beginner, formatted as clean HTML. Write the entire response in %s.`

// ManualFromImagePrompt returns the system instruction for identifying a
// device from a photo and writing its guide in the given language.
func ManualFromImagePrompt(language string) string {
	return fmt.Sprintf(manualFromImageTemplate, language)
}

// ManualFromTextPrompt returns the system instruction for writing a guide
// for a device named in text.
func ManualFromTextPrompt(language string) string {
	return fmt.Sprintf(manualFromTextTemplate, language)
}

// FollowUpPrompt returns the system instruction for a single-turn follow-up
// question about an already-identified device.
func FollowUpPrompt(language string) string {
	return fmt.Sprintf(followUpTemplate, language)
}

// LegacyManualPrompt is the system instruction used by the original
// process_device_image flow: plain text, numbered list, no language option.
// Kept verbatim so the audio pipeline keeps receiving speakable text rather
// than HTML.
const LegacyManualPrompt = `You are an expert technical manual writer named 'DigiHelp'. Your goal is to ` +
	`generate clear, concise, and easy-to-follow step-by-step instructions for ` +
	`operating a device shown in the image. The user is a beginner. ` +
	`Always start the response by identifying the device first, and then give the steps. ` +
	`The entire output must be formatted as a single, clean text string where the ` +
	`manual is a numbered list. DO NOT include any introductory or concluding sentences. ` +
	`Only provide the device name on the first line, and the numbered list starting on the next line.`

// ManualUserPrompt is the fixed user message accompanying a device image.
const ManualUserPrompt = "Generate a step-by-step guide on 'How to use this device' for a beginner user. " +
	"Ensure the steps are easy to understand."

// FollowUpUserPrompt formats the user message for a follow-up question.
func FollowUpUserPrompt(device, question string) string {
	return fmt.Sprintf("The device is: %s\n\nQuestion: %s", device, question)
}

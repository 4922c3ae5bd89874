package visionmodel

import "strings"

type questionRule struct {
	keywords []string
	question string
}

// questionRules shape the model question from the user's normalized
// utterance: a query about time reads a clock, a count query counts, and so
// on. First matching rule wins.
var questionRules = []questionRule{
	{
		keywords: []string{"time", "clock", "watch", "समय", "घड़ी", "સમય", "ઘડિયાળ"},
		question: "What time is shown on any clock, watch, or time display visible in this image? Read the exact time.",
	},
	{
		keywords: []string{"how many people", "कितने लोग", "કેટલા લોકો"},
		question: "How many people are in this image? Count them carefully.",
	},
	{
		keywords: []string{"who is", "who are", "कौन है", "કોણ છે"},
		question: "Describe the people in this image. Who do you see?",
	},
	{
		keywords: []string{"how many", "count", "कितने", "કેટલા"},
		question: "Count and list all the objects you can see in this image.",
	},
	{
		keywords: []string{"color", "colour", "रंग", "રંગ"},
		question: "What colors do you see in this image? Describe them in detail.",
	},
	{
		keywords: []string{"where am i", "what room", "what place", "कहाँ", "ક્યાં"},
		question: "Describe this location. What kind of room or place is this? What can you see?",
	},
	{
		keywords: []string{"read", "text", "written", "says", "पढ़", "लिखा", "વાંચ", "લખ્યું"},
		question: "Read all the text visible in this image. What does it say?",
	},
	{
		keywords: []string{"screen", "monitor", "display", "स्क्रीन", "સ્ક્રીન"},
		question: "What is displayed on the screen or monitor in this image? Describe what you see.",
	},
}

const defaultQuestion = "Describe everything you see in this image in detail, including any text, numbers, people, objects, colors, and the setting. Be specific and thorough."

// BuildQuestion converts a normalized utterance into the question asked of
// the vision model.
func BuildQuestion(text string) string {
	for _, rule := range questionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.question
			}
		}
	}
	return defaultQuestion
}

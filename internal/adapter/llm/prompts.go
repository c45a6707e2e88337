package llm

import "github.com/tmc/langchaingo/prompts"

const generationTemplate = `
Text:{text}
You are an expert MCQ maker. Given the above text, it is your job to 
create a quiz of {number} multiple choice questions for {subject} students in {tone} tone.
Make sure the questions are not repeated and check all the questions to be conforming the text as well.
Make sure to format your response like RESPONSE_JSON below and use it as a guide.
Ensure to make {number} MCQs
### RESPONSE_JSON
{response_json}
`

const reviewTemplate = `
You are an expert english grammarian and writer. Given a Multiple Choice Quiz for {subject} students.
You need to evaluate the complexity of the test and give a complete analysis of the quiz if the students
will be able to understand the questions and answer them. Only use at max 50 words for complexity analysis.
If the quiz is not at par with the cognitive and analytical abilities of the students,
update tech quiz questions which need to be changed and change the tone such that it perfectly fits the student abilities
Quiz_MCQ:
{quiz}
Check from an expert English Writer of the above quiz:
`

// Both templates use f-string placeholders
var generationPrompt = prompts.PromptTemplate{
	Template:       generationTemplate,
	InputVariables: []string{"text", "number", "subject", "tone", "response_json"},
	TemplateFormat: prompts.TemplateFormatFString,
}

var reviewPrompt = prompts.PromptTemplate{
	Template:       reviewTemplate,
	InputVariables: []string{"subject", "quiz"},
	TemplateFormat: prompts.TemplateFormatFString,
}

package main

import "lingo_quiz/internal/model"

type seedQuestion struct {
	text    string
	correct string
	options []string
}

var seedLanguages = []model.Language{
	{Code: "es", Name: "Spanish", FlagEmoji: "🇪🇸"},
	{Code: "fr", Name: "French", FlagEmoji: "🇫🇷"},
	{Code: "de", Name: "German", FlagEmoji: "🇩🇪"},
	{Code: "it", Name: "Italian", FlagEmoji: "🇮🇹"},
}

// 難易度ごとの問題タイプ
var seedQuestionTypes = map[model.QuizLevel]model.QuestionType{
	model.LevelBeginner:     model.QuestionMultipleChoice,
	model.LevelIntermediate: model.QuestionSpeech,
	model.LevelExpert:       model.QuestionTranslation,
}

var seedQuestions = map[model.QuizLevel]map[string][]seedQuestion{
	model.LevelBeginner: {
		"es": {
			{`How do you say "hello" in Spanish?`, "Hola", []string{"Bonjour", "Ciao", "Hola"}},
			{`What is "goodbye" in Spanish?`, "Adiós", []string{"Au revoir", "Arrivederci", "Adiós"}},
		},
		"fr": {
			{`How do you say "hello" in French?`, "Bonjour", []string{"Hola", "Ciao", "Bonjour"}},
			{`What is "goodbye" in French?`, "Au revoir", []string{"Adiós", "Arrivederci", "Au revoir"}},
		},
		"de": {
			{`How do you say "hello" in German?`, "Hallo", []string{"Bonjour", "Ciao", "Hallo"}},
			{`What is "goodbye" in German?`, "Auf Wiedersehen", []string{"Au revoir", "Arrivederci", "Auf Wiedersehen"}},
		},
		"it": {
			{`How do you say "hello" in Italian?`, "Ciao", []string{"Bonjour", "Hola", "Ciao"}},
			{`What is "goodbye" in Italian?`, "Arrivederci", []string{"Au revoir", "Adiós", "Arrivederci"}},
		},
	},
	model.LevelIntermediate: {
		"es": {
			{`Listen and repeat: "¿Cómo estás?"`, "¿Cómo estás?", []string{"Muy bien", "Regular", "Mal"}},
			{`Practice saying: "Mucho gusto"`, "Mucho gusto", []string{"Nice to meet you", "Good morning", "Thank you"}},
		},
		"fr": {
			{`Listen and repeat: "Comment allez-vous?"`, "Comment allez-vous?", []string{"Très bien", "Comme ci comme ça", "Mal"}},
			{`Practice saying: "Enchanté"`, "Enchanté", []string{"Nice to meet you", "Good morning", "Thank you"}},
		},
		"de": {
			{`Listen and repeat: "Wie geht es dir?"`, "Wie geht es dir?", []string{"Sehr gut", "Es geht", "Schlecht"}},
			{`Practice saying: "Freut mich"`, "Freut mich", []string{"Nice to meet you", "Good morning", "Thank you"}},
		},
		"it": {
			{`Listen and repeat: "Come stai?"`, "Come stai?", []string{"Molto bene", "Così così", "Male"}},
			{`Practice saying: "Piacere"`, "Piacere", []string{"Nice to meet you", "Good morning", "Thank you"}},
		},
	},
	model.LevelExpert: {
		"es": {
			{`Translate: "I would like to practice my Spanish"`, "Me gustaría practicar mi español",
				[]string{"Me gusta español", "Quiero hablar español", "Me gustaría practicar mi español"}},
			{`What is the correct way to say "I have been learning Spanish for two years"?`, "He estado aprendiendo español durante dos años",
				[]string{"Estoy aprendiendo español por dos años", "Aprendo español desde dos años", "He estado aprendiendo español durante dos años"}},
		},
		"fr": {
			{`Translate: "I would like to practice my French"`, "Je voudrais pratiquer mon français",
				[]string{"Je veux français", "Je parle français", "Je voudrais pratiquer mon français"}},
			{`What is the correct way to say "I have been learning French for two years"?`, "J'apprends le français depuis deux ans",
				[]string{"Je suis apprendre français pour deux ans", "Je parle français pour deux ans", "J'apprends le français depuis deux ans"}},
		},
		"de": {
			{`Translate: "I would like to practice my German"`, "Ich möchte mein Deutsch üben",
				[]string{"Ich mag Deutsch", "Ich spreche Deutsch", "Ich möchte mein Deutsch üben"}},
			{`What is the correct way to say "I have been learning German for two years"?`, "Ich lerne seit zwei Jahren Deutsch",
				[]string{"Ich lerne Deutsch für zwei Jahre", "Ich spreche Deutsch seit zwei Jahre", "Ich lerne seit zwei Jahren Deutsch"}},
		},
		"it": {
			{`Translate: "I would like to practice my Italian"`, "Vorrei praticare il mio italiano",
				[]string{"Mi piace italiano", "Parlo italiano", "Vorrei praticare il mio italiano"}},
			{`What is the correct way to say "I have been learning Italian for two years"?`, "Studio italiano da due anni",
				[]string{"Studio italiano per due anni", "Parlo italiano da due anni", "Studio italiano da due anni"}},
		},
	},
}

// questionRequests は言語・難易度の組に対する作成リクエストを返します。
func questionRequests(level model.QuizLevel, languageCode string) []*model.QuestionRequest {
	items := seedQuestions[level][languageCode]
	reqs := make([]*model.QuestionRequest, 0, len(items))
	for i, item := range items {
		options := make([]model.OptionRequest, 0, len(item.options))
		for _, text := range item.options {
			options = append(options, model.OptionRequest{Text: text, IsCorrect: text == item.correct})
		}
		reqs = append(reqs, &model.QuestionRequest{
			Text:          item.text,
			QuestionType:  seedQuestionTypes[level],
			CorrectAnswer: item.correct,
			Position:      i + 1,
			Options:       options,
		})
	}
	return reqs
}

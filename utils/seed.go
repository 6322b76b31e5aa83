package utils

import (
	"context"
	"log"
	"time"

	"emotale/db"
	"emotale/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SeedScenarios populates the scenario catalog with the built-in exercises.
// Skipped when the collection already has data.
func SeedScenarios() {
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := db.ScenarioCollection.CountDocuments(dbCtx, bson.M{})
	if err != nil || count > 0 {
		return
	}

	base := time.Now()
	for i, scenario := range builtinScenarios() {
		// Stagger creation times so catalog order is stable.
		scenario.CreatedAt = base.Add(time.Duration(i) * time.Second)
		if _, err := db.ScenarioCollection.InsertOne(dbCtx, scenario); err != nil {
			log.Printf("Failed to seed scenario %s: %v", scenario.ID, err)
		}
	}
	log.Println("Seeded built-in scenarios")
}

func builtinScenarios() []models.Scenario {
	return []models.Scenario{
		{
			ID:          "family-conflict",
			Title:       "Family Dinner Disagreement",
			Description: "Navigate a tense conversation about household responsibilities.",
			Difficulty:  models.DifficultyBeginner,
			Emotions:    []string{"anger", "sadness"},
			Story: []models.Segment{
				{
					ID:                         1,
					Narrative:                  "It's Sunday evening, and your family is gathered around the dinner table. Your mother mentions that you haven't been helping with household chores lately.\n\n\"I've noticed you haven't done the dishes in over a week,\" she says, her voice slightly strained. \"Your siblings and I have been picking up the slack.\"",
					EmotionRecognitionQuestion: "What emotion is your mother likely experiencing?",
					EmotionOptions:             []string{"Frustration", "Joy", "Confusion", "Excitement", "Fear", "Sadness"},
					CorrectEmotion:             "Frustration",
					EmotionExplanation:         "Your mother is expressing frustration. Notice the strained voice and the mention of having to compensate for your actions. Frustration often arises when expectations aren't met repeatedly.",
				},
				{
					ID:                 2,
					Narrative:          "Your first instinct is to feel defensive. You've been really busy with work and feel like you're being criticized in front of everyone.",
					CharacterEmotion:   "Defensiveness",
					EmotionExplanation: "Feeling defensive is natural when we perceive criticism. Notice how your body might tense up and you might want to justify or explain immediately.",
					Choices: []models.Choice{
						{
							Text:              "\"That's not fair! I've been working overtime all week. You don't understand how tired I am.\"",
							EmotionalResponse: "Defensiveness and anger",
							IsHealthy:         false,
							Feedback:          "While your feelings are valid, responding defensively can escalate the situation. Try acknowledging the concern first before explaining your perspective.",
						},
						{
							Text:              "\"You're right, I haven't been keeping up with my chores. I've been overwhelmed with work, but that's not an excuse. Can we talk about a better system?\"",
							EmotionalResponse: "Accountability and openness",
							IsHealthy:         true,
							Feedback:          "Excellent! You acknowledged the concern, validated your mother's feelings, and opened up communication. This shows emotional maturity and problem-solving.",
						},
						{
							Text:              "Say nothing and leave the table.",
							EmotionalResponse: "Withdrawal and avoidance",
							IsHealthy:         false,
							Feedback:          "Avoiding the conversation might feel safer in the moment, but it leaves the issue unresolved and may damage relationships. Staying engaged, even when uncomfortable, is important.",
						},
					},
				},
				{
					ID:                         3,
					Narrative:                  "Your mother responds: \"I appreciate you acknowledging that. I know you're working hard, and I'm proud of you. But we need everyone to contribute. Let's figure out a schedule that works for everyone.\"",
					EmotionRecognitionQuestion: "What emotion is your mother showing now?",
					EmotionOptions:             []string{"Empathy", "Anger", "Disappointment", "Confusion", "Pride", "Relief"},
					CorrectEmotion:             "Empathy",
					EmotionExplanation:         "Your mother is showing empathy - she acknowledges your hard work while maintaining her boundary. Empathy means understanding another's feelings while still addressing the issue at hand.",
				},
				{
					ID:                 4,
					Narrative:          "The conversation ends with your family agreeing on a new chore schedule. Everyone seems more relaxed now.\n\nAs you help clear the table, you notice you're feeling different than when the conversation started.",
					CharacterEmotion:   "Relief and connection",
					EmotionExplanation: "You might feel relief that the conflict was resolved constructively, and a renewed sense of connection with your family. Healthy conflict resolution often strengthens relationships rather than damaging them.",
				},
			},
		},
		{
			ID:          "workplace-feedback",
			Title:       "Receiving Critical Feedback",
			Description: "Practice staying open when your work is criticized.",
			Difficulty:  models.DifficultyIntermediate,
			Emotions:    []string{"anxiety", "anger"},
			Story: []models.Segment{
				{
					ID:                         1,
					Narrative:                  "Your manager, Sarah, asks to meet with you after the morning standup. \"I wanted to discuss the presentation you gave to the client yesterday. While the content was solid, I noticed the delivery wasn't as polished as it could have been. The client seemed confused at several points.\"",
					EmotionRecognitionQuestion: "What emotion might you be experiencing right now?",
					EmotionOptions:             []string{"Anxiety", "Defensiveness", "Shame", "Anger", "Confusion", "Pride"},
					CorrectEmotion:             "Defensiveness",
					EmotionExplanation:         "Receiving unexpected criticism often triggers defensiveness. Your mind might immediately jump to justifications or feel like your competence is being questioned. This is a normal protective response.",
				},
				{
					ID:                 2,
					Narrative:          "You feel your heart rate increase and notice the urge to explain all the reasons why the presentation went the way it did. You spent weeks preparing!",
					CharacterEmotion:   "Defensiveness and hurt pride",
					EmotionExplanation: "When we invest significant effort into something, criticism can feel personal. Notice the physical sensations - increased heart rate, tension - these are signals of your emotional state.",
					Choices: []models.Choice{
						{
							Text:              "\"I don't think that's fair. I worked really hard on that presentation, and I thought it went well. Maybe the client just wasn't prepared.\"",
							EmotionalResponse: "Defensiveness and blame-shifting",
							IsHealthy:         false,
							Feedback:          "Deflecting feedback by blaming the client prevents you from learning and growing. It also may damage your professional relationship with your manager.",
						},
						{
							Text:              "\"Thank you for letting me know. That's disappointing to hear, but I want to understand better. Can you give me specific examples of where the confusion happened?\"",
							EmotionalResponse: "Disappointment with curiosity",
							IsHealthy:         true,
							Feedback:          "Excellent response! You acknowledged your feelings while staying open to feedback. Asking for specifics shows professionalism and a genuine desire to improve.",
						},
						{
							Text:              "\"You're absolutely right. I'm terrible at presentations. I should probably not be doing client-facing work.\"",
							EmotionalResponse: "Shame and self-deprecation",
							IsHealthy:         false,
							Feedback:          "This response swings too far in the opposite direction. One piece of constructive feedback doesn't mean you're terrible. Avoid catastrophizing or making sweeping negative judgments about yourself.",
						},
					},
				},
				{
					ID:                         3,
					Narrative:                  "Sarah provides specific examples and continues, \"You have great technical knowledge and the content was thorough. With some adjustments to your delivery style, you'll be even more effective. Would you be interested in some presentation coaching?\"",
					EmotionRecognitionQuestion: "What emotion is Sarah demonstrating toward you?",
					EmotionOptions:             []string{"Support", "Contempt", "Frustration", "Disappointment", "Anger", "Confusion"},
					CorrectEmotion:             "Support",
					EmotionExplanation:         "Sarah is showing support. She's offering specific, actionable feedback and resources to help you improve. Constructive feedback from a good manager comes from a place of wanting you to succeed.",
				},
				{
					ID:                 4,
					Narrative:          "After the meeting, you reflect on the conversation. While it was initially uncomfortable, you recognize that Sarah's feedback will make you better at your job.\n\nYou feel ready to work on improving your presentation skills.",
					CharacterEmotion:   "Determination and growth mindset",
					EmotionExplanation: "You've processed the initial defensive feelings and arrived at determination. This is emotional regulation in action - allowing yourself to feel the discomfort while not being controlled by it.",
				},
			},
		},
		{
			ID:          "friendship-betrayal",
			Title:       "Friend Breaks a Promise",
			Description: "Work through hurt feelings when a close friend lets you down.",
			Difficulty:  models.DifficultyIntermediate,
			Emotions:    []string{"sadness", "trust", "anger"},
			Story: []models.Segment{
				{
					ID:                         1,
					Narrative:                  "You've been planning to see your favorite band with your best friend, Alex, for three months. Two hours before you're supposed to leave, Alex texts: \"Hey... I'm really sorry but I can't make it tonight. An old friend from college is in town and I haven't seen them in years. I hope you understand.\"",
					EmotionRecognitionQuestion: "What emotion are you likely experiencing?",
					EmotionOptions:             []string{"Hurt", "Joy", "Confusion", "Anger", "Relief", "Pride"},
					CorrectEmotion:             "Hurt",
					EmotionExplanation:         "Hurt is a common response when someone we care about breaks a commitment, especially for something you've both been looking forward to. The hurt comes from feeling deprioritized or less important.",
				},
				{
					ID:                 2,
					Narrative:          "You stare at the message, feeling a mix of emotions. You're disappointed about missing out on experiencing the concert together, and you feel hurt that Alex is choosing someone else over your long-standing plans.",
					CharacterEmotion:   "Hurt and anger",
					EmotionExplanation: "It's normal to feel multiple emotions at once. The hurt stems from feeling let down, while anger might arise from the perceived unfairness of the situation.",
					Choices: []models.Choice{
						{
							Text:              "\"Wow. Thanks for letting me know you value your college friend more than me. Have fun.\" [Don't reply to further messages]",
							EmotionalResponse: "Anger and passive-aggression",
							IsHealthy:         false,
							Feedback:          "While your hurt feelings are valid, passive-aggressive responses can damage the friendship. Expressing hurt through sarcasm prevents real communication and resolution.",
						},
						{
							Text:              "\"I'm really hurt, Alex. We've been planning this for months. I understand wanting to see your friend, but the timing feels really inconsiderate. Can we talk about this?\"",
							EmotionalResponse: "Hurt expressed honestly",
							IsHealthy:         true,
							Feedback:          "Excellent! You're expressing your feelings directly and honestly without attacking Alex. You're also opening the door for dialogue, which gives the friendship a chance to strengthen through this challenge.",
						},
						{
							Text:              "\"No worries! Hope you have a great time!\" [But feel resentful inside]",
							EmotionalResponse: "People-pleasing and suppression",
							IsHealthy:         false,
							Feedback:          "Suppressing your true feelings might avoid immediate conflict, but it creates resentment over time. Authentic friendships require honest (and kind) communication about hurt feelings.",
						},
					},
				},
				{
					ID:                         3,
					Narrative:                  "Alex calls you instead of texting back. \"I hear that you're hurt, and you're right to be. I messed up with my timing. I can't undo canceling, but I want to make it up to you. Can I buy us tickets to their next show? And I promise I'll be there.\"",
					EmotionRecognitionQuestion: "What is Alex demonstrating?",
					EmotionOptions:             []string{"Accountability", "Defensiveness", "Anger", "Confusion", "Indifference", "Joy"},
					CorrectEmotion:             "Accountability",
					EmotionExplanation:         "Alex is taking accountability - acknowledging the mistake, validating your feelings, and offering to make amends. This is a sign of emotional maturity and care for the relationship.",
				},
				{
					ID:                 4,
					Narrative:          "You decide to go to the concert alone and actually enjoy yourself. Later, you and Alex talk more about the situation and agree to be more communicative about conflicts in scheduling.\n\nYour friendship feels stronger for having worked through this disagreement honestly.",
					CharacterEmotion:   "Understanding and forgiveness",
					EmotionExplanation: "After processing the hurt and having honest communication, you're able to extend understanding and forgiveness. Healthy relationships involve navigating disappointments together and coming out stronger.",
				},
			},
		},
		{
			ID:          "social-anxiety",
			Title:       "Meeting New People",
			Description: "Manage nervousness at a gathering full of strangers.",
			Difficulty:  models.DifficultyBeginner,
			Emotions:    []string{"anxiety", "fear"},
			Story: []models.Segment{
				{
					ID:                         1,
					Narrative:                  "You've just moved to a new neighborhood, and your neighbor invited you to a community barbecue. As you approach the backyard full of strangers, your heart starts racing.\n\nYou see groups of people laughing and talking easily with each other. Everyone seems to already know each other.",
					EmotionRecognitionQuestion: "What are you experiencing?",
					EmotionOptions:             []string{"Nervousness", "Anger", "Joy", "Disgust", "Sadness", "Pride"},
					CorrectEmotion:             "Nervousness",
					EmotionExplanation:         "Social nervousness is characterized by physical symptoms like racing heart, worries about being judged, and uncertainty about how to engage. This is a very common experience, especially in new social situations.",
				},
				{
					ID:                 2,
					Narrative:          "Your mind fills with anxious thoughts: \"What if I say something stupid? What if no one wants to talk to me? Maybe I should just leave.\"\n\nYou notice your palms are sweaty and you're standing awkwardly near the entrance.",
					CharacterEmotion:   "Social anxiety and self-doubt",
					EmotionExplanation: "Social anxiety often includes negative predictions about social interactions and heightened self-consciousness. Notice how the thoughts are making predictions about the future that may not be accurate.",
					Choices: []models.Choice{
						{
							Text:              "Turn around and go home. Text your neighbor later saying you weren't feeling well.",
							EmotionalResponse: "Avoidance and relief (temporary)",
							IsHealthy:         false,
							Feedback:          "Avoiding anxiety-provoking situations provides temporary relief but reinforces the anxiety long-term. Each time you avoid, the next social situation becomes harder.",
						},
						{
							Text:              "Take a few deep breaths and remind yourself: \"I'm nervous, and that's okay. I'll just start by saying hi to one person.\" Approach the nearest friendly-looking person.",
							EmotionalResponse: "Courage despite nervousness",
							IsHealthy:         true,
							Feedback:          "Perfect! You're acknowledging the anxiety without letting it control your behavior. Taking small, manageable steps (talking to one person) is an excellent strategy for managing social anxiety.",
						},
						{
							Text:              "Stand in the corner alone and wait for someone to approach you while checking your phone.",
							EmotionalResponse: "Passive avoidance",
							IsHealthy:         false,
							Feedback:          "While this keeps you at the event, hiding behind your phone signals unavailability and makes it harder for others to approach. Active engagement, even small, is more effective.",
						},
					},
				},
				{
					ID:                         3,
					Narrative:                  "You approach a woman who's refilling her drink. \"Hi, I'm new to the neighborhood,\" you manage to say, your voice a bit shaky.\n\nShe smiles warmly. \"Welcome! I'm Maria. How are you settling in?\"\n\nThe conversation flows more easily than you expected, and you notice your anxiety decreasing.",
					EmotionRecognitionQuestion: "What are you experiencing now?",
					EmotionOptions:             []string{"Relief", "Anger", "Confusion", "Sadness", "Fear", "Disgust"},
					CorrectEmotion:             "Relief",
					EmotionExplanation:         "Relief comes when a feared outcome doesn't materialize. The positive social interaction contradicted your anxious predictions, and your nervous system is calming down. This is evidence that you can challenge anxious thoughts with action.",
				},
				{
					ID:                 4,
					Narrative:          "By the end of the barbecue, you've talked to several people and even made plans to join a neighborhood book club.\n\nAs you walk home, you feel proud of yourself for pushing through the initial anxiety.",
					CharacterEmotion:   "Pride and confidence",
					EmotionExplanation: "You've successfully challenged your social anxiety and created positive social experiences. Each time you face a fear and survive, you build evidence against anxious predictions and develop confidence.",
				},
			},
		},
		{
			ID:          "romantic-miscommunication",
			Title:       "Relationship Misunderstanding",
			Description: "Replace anxious assumptions with honest conversation.",
			Difficulty:  models.DifficultyAdvanced,
			Emotions:    []string{"sadness", "fear", "trust"},
			Story: []models.Segment{
				{
					ID:                         1,
					Narrative:                  "Your partner, Jamie, has been quiet and distant for the past few days. When you finally see Jamie in person, they seem distracted and don't make eye contact.\n\n\"Is everything okay?\" you ask.\n\n\"Yeah, fine,\" Jamie responds, but their tone suggests otherwise.",
					EmotionRecognitionQuestion: "What might Jamie be feeling?",
					EmotionOptions:             []string{"Worry", "Joy", "Excitement", "Anger", "Hurt", "Confusion"},
					CorrectEmotion:             "Worry",
					EmotionExplanation:         "The withdrawn behavior and distraction suggest Jamie is preoccupied with something worrying. When people are dealing with anxiety or stress, they often become distant as they process internally.",
				},
				{
					ID:                 2,
					Narrative:          "You feel a knot in your stomach. Your mind races with possibilities: \"Are they upset with me? Are they losing interest? Did I do something wrong?\"\n\nYou're feeling anxious and uncertain about where you stand.",
					CharacterEmotion:   "Anxiety and insecurity",
					EmotionExplanation: "When there's ambiguity in a close relationship, it's natural to feel anxious. Notice how you're making assumptions without having all the information.",
					Choices: []models.Choice{
						{
							Text:              "\"Obviously something's wrong. If you don't want to be with me anymore, just say it.\"",
							EmotionalResponse: "Fear expressed as accusation",
							IsHealthy:         false,
							Feedback:          "When we're anxious, we sometimes jump to worst-case scenarios and express them as accusations. This can push the other person away and prevent them from opening up about what's actually wrong.",
						},
						{
							Text:              "\"Jamie, I notice you've been distant lately, and I'm feeling worried about us. I care about you, and I want to understand what's going on. Can we talk about it?\"",
							EmotionalResponse: "Vulnerability and openness",
							IsHealthy:         true,
							Feedback:          "Excellent! You're sharing your feelings using \"I\" statements, expressing care, and inviting dialogue. This creates safety for Jamie to open up about what they're experiencing.",
						},
						{
							Text:              "Say nothing and become distant yourself to \"protect\" yourself from potential hurt.",
							EmotionalResponse: "Withdrawal and self-protection",
							IsHealthy:         false,
							Feedback:          "Creating distance to protect yourself creates a negative cycle where both partners withdraw. This prevents resolution and increases disconnection.",
						},
					},
				},
				{
					ID:                         3,
					Narrative:                  "Jamie's eyes fill with tears. \"I'm sorry I've been distant. My mom has been really sick, and I've been terrified. I didn't want to burden you with it, but I've been a mess inside. I wasn't pulling away from you - I was just overwhelmed and didn't know how to talk about it.\"",
					EmotionRecognitionQuestion: "What is Jamie experiencing?",
					EmotionOptions:             []string{"Fear", "Anger", "Joy", "Disgust", "Confusion", "Pride"},
					CorrectEmotion:             "Fear",
					EmotionExplanation:         "Jamie has been dealing with fear about their mother's health. Sometimes people withdraw when afraid because they're trying to manage overwhelming emotions. The distance wasn't about the relationship - it was about their own internal struggle.",
				},
				{
					ID:                 4,
					Narrative:          "You hold Jamie as they share more about what's been happening. \"I'm here for you,\" you say. \"You don't have to go through this alone.\"\n\nJamie looks relieved. \"Thank you for asking and not just assuming. I should have told you sooner.\"",
					CharacterEmotion:   "Compassion and connection",
					EmotionExplanation: "By approaching the situation with curiosity instead of assumption, you created space for truth and deeper connection. This experience can actually strengthen your relationship by building trust and emotional intimacy.",
				},
				{
					ID:                 5,
					Narrative:          "You both agree to communicate more openly when stressed in the future. The conversation has brought you closer together, and you feel grateful that you chose to talk rather than assume the worst.",
					CharacterEmotion:   "Gratitude and love",
					EmotionExplanation: "Navigating difficult conversations successfully often deepens relationships. You've learned more about each other's communication patterns and established a foundation for handling future challenges together.",
				},
			},
		},
		{
			ID:          "academic-pressure",
			Title:       "Exam Day Stress",
			Description: "Calm an activated stress response before a high-stakes exam.",
			Difficulty:  models.DifficultyBeginner,
			Emotions:    []string{"anxiety", "joy"},
			Story: []models.Segment{
				{
					ID:                         1,
					Narrative:                  "It's the morning of your final exam - the one that counts for 40% of your grade. You've studied for weeks, but as you sit in your seat waiting for the exam to begin, your mind goes blank.\n\nYour heart is pounding. Your hands are shaking. You can't remember anything you studied.",
					EmotionRecognitionQuestion: "What are you experiencing?",
					EmotionOptions:             []string{"Stress", "Joy", "Anger", "Disgust", "Excitement", "Sadness"},
					CorrectEmotion:             "Stress",
					EmotionExplanation:         "You're experiencing acute stress. The physical symptoms (racing heart, shaking hands, mental fog) are signs that your stress response system is activated, which can interfere with memory and thinking.",
				},
				{
					ID:                 2,
					Narrative:          "Panicked thoughts race through your mind: \"I'm going to fail. I can't remember anything. Everyone else looks calm - what's wrong with me?\"\n\nYou notice some classmates taking deep breaths, others reviewing their notes one last time.",
					CharacterEmotion:   "Panic and catastrophizing",
					EmotionExplanation: "When highly stressed, our thoughts often become catastrophic - predicting the worst possible outcomes. Notice how the thoughts are absolute rather than grounded in present reality.",
					Choices: []models.Choice{
						{
							Text:              "Continue panicking and let the catastrophic thoughts spiral. Start the exam in this heightened state.",
							EmotionalResponse: "Overwhelmed panic",
							IsHealthy:         false,
							Feedback:          "Allowing panic to continue unchecked will make it harder to think clearly during the exam. Your stress response needs to be calmed before you can access your knowledge effectively.",
						},
						{
							Text:              "Take slow, deep breaths. Count to 4 breathing in, hold for 4, breathe out for 4. Remind yourself: \"I've prepared for this. The anxiety will pass. I can do this one question at a time.\"",
							EmotionalResponse: "Self-regulation and self-compassion",
							IsHealthy:         true,
							Feedback:          "Perfect! You're using physiological calming (deep breathing) and cognitive reframing (realistic self-talk) to regulate your stress response. This will help you access your knowledge and perform better.",
						},
						{
							Text:              "Get up and leave. Decide to take the exam another time when you're less anxious.",
							EmotionalResponse: "Avoidance",
							IsHealthy:         false,
							Feedback:          "While removing yourself from a stressful situation can sometimes be helpful, avoiding the exam reinforces the anxiety and doesn't build your capacity to manage stress in important situations.",
						},
					},
				},
				{
					ID:                         3,
					Narrative:                  "After a few minutes of deep breathing, you notice your heart rate slowing. Your mind starts to clear.\n\nWhen you look at the first exam question, you realize you know the answer. Then the second. Your confidence begins to build.",
					EmotionRecognitionQuestion: "What are you feeling now?",
					EmotionOptions:             []string{"Determination", "Fear", "Sadness", "Anger", "Confusion", "Disgust"},
					CorrectEmotion:             "Determination",
					EmotionExplanation:         "As your stress decreases and you start successfully answering questions, determination emerges. You're focused on the task at hand and gaining confidence with each small success.",
				},
				{
					ID:                 4,
					Narrative:          "You complete the exam feeling reasonably confident. As you leave the exam room, you feel proud of yourself - not just for the exam content, but for managing your anxiety effectively.",
					CharacterEmotion:   "Pride and relief",
					EmotionExplanation: "You've successfully navigated a high-stress situation by regulating your emotions rather than being controlled by them. This is an important life skill that extends far beyond academics.",
				},
			},
		},
	}
}

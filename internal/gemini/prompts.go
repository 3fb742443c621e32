package gemini

const extractPrompt = `Please extract ALL text content from this video including:
1. All spoken dialogue and narration (transcribe speech to text)
2. Any text that appears on screen (titles, captions, signs, etc.)
3. Any other textual information visible in the video

Provide the complete transcript in chronological order.
If there are multiple speakers, indicate speaker changes.`

const summaryPrompt = `Please create a comprehensive summary of the following text extracted from a video:

%s

Provide:
1. A brief overview (2-3 sentences)
2. Key points and main topics discussed
3. Important details or conclusions
4. Any notable quotes or statements

Make the summary clear, concise, and well-organized.`

package domain

// Catalog returns the labs in dashboard order. Each call builds a fresh copy.
func Catalog() []*Lab {
	return []*Lab{
		{
			Key:             "reflected-basic",
			Name:            "Basic Reflected XSS",
			Difficulty:      DifficultyBeginner,
			Description:     "Learn the fundamentals of reflected XSS through form input.",
			Icon:            "arrow-right-left",
			EstimatedTime:   "10 minutes",
			PageDescription: "Simple form that reflects user input without sanitization. Inject JavaScript that executes when displayed.",
			Hints: []Hint{
				{"Check Input Handling", "User input inserted directly into HTML without filtering."},
				{"HTML Tags Work", "HTML tags in name field get rendered by browser."},
				{"Need Execution", "JavaScript must actually run - look for alert popup."},
				{"Common Payloads", "Try: <script>alert(1)</script>, <img src=x onerror=alert(1)>, <svg onload=alert(1)>"},
				{"Event Handlers", "Use HTML event handlers like onerror, onload, onmouseover, onclick to trigger JavaScript execution."},
				{"Solution", "Enter: <script>alert('XSS Success!')</script> and you should see a popup appear."},
			},
		},
		{
			Key:             "url-parameter",
			Name:            "URL Parameter XSS",
			Difficulty:      DifficultyBeginner,
			Description:     "Exploit XSS vulnerabilities through URL parameters.",
			Icon:            "link",
			EstimatedTime:   "10 minutes",
			PageDescription: "URL parameters reflected in page content without sanitization.",
			Hints: []Hint{
				{"URL Parameters", "Look at how URL parameters are processed and displayed on the page."},
				{"Direct Injection", "Try adding XSS payloads directly to the URL parameters."},
				{"Execution Required", "Success is only achieved when JavaScript executes and shows an alert popup."},
				{"Common Payloads", "Try: ?search=<script>alert(1)</script> or ?search=<img src=x onerror=alert(1)>"},
				{"Solution", "Add ?search=<script>alert('XSS Success!')</script> to the URL and see the popup."},
			},
		},
		{
			Key:             "form-input",
			Name:            "Form Input XSS",
			Difficulty:      DifficultyBeginner,
			Description:     "Discover XSS in form input processing.",
			Icon:            "edit",
			EstimatedTime:   "10 minutes",
			PageDescription: "Form input processing without validation - multiple injection points.",
			Hints: []Hint{
				{"Form Processing", "Examine how form inputs are processed and displayed."},
				{"Input Validation", "Notice the lack of input validation on form fields."},
				{"Solution", "Enter <script>alert('XSS')</script> in the form field."},
			},
		},
		{
			Key:             "stored-basic",
			Name:            "Basic Stored XSS",
			Difficulty:      DifficultyBeginner,
			Description:     "Understand persistent XSS through database storage.",
			Icon:            "database",
			EstimatedTime:   "15 minutes",
			PageDescription: "Persistent XSS stored in database - payload executes for all visitors.",
			Hints: []Hint{
				{"Persistent Storage", "Payload stored in database - executes for every visitor."},
				{"Multiple Fields", "Both name and comment fields accept HTML input."},
				{"Script Tags", "Use <script> tags - stored and executed for all users."},
				{"Solution", "Enter the following in the comment field: <script>alert('XSS')</script>"},
			},
		},
		{
			Key:             "dom-basic",
			Name:            "Simple DOM XSS",
			Difficulty:      DifficultyBeginner,
			Description:     "Learn client-side XSS through DOM manipulation.",
			Icon:            "code",
			EstimatedTime:   "15 minutes",
			PageDescription: "Client-side XSS through DOM manipulation - vulnerability in JavaScript code.",
			Hints: []Hint{
				{"Client-Side Vulnerability", "JavaScript processes URL color parameter directly."},
				{"URL Parameter", "Add ?color=red to URL - JavaScript uses parameter value."},
				{"innerHTML Usage", "Color parameter inserted via innerHTML - try HTML tags."},
				{"Solution", "Add this to the URL: ?color=<script>alert('XSS')</script>"},
			},
		},
		{
			Key:             "attribute",
			Name:            "HTML Attribute XSS",
			Difficulty:      DifficultyIntermediate,
			Description:     "Exploit XSS within HTML attribute contexts.",
			Icon:            "tag",
			EstimatedTime:   "20 minutes",
			PageDescription: "XSS in HTML attributes - break out of attribute context to inject event handlers.",
			SuccessMessage:  "You successfully executed an HTML attribute XSS attack!",
			Hints: []Hint{
				{"Attribute Context", "Input placed in HTML attributes (title, alt) - check generated HTML."},
				{"Quote Escape", "Close attribute quote, then add new attributes."},
				{"Event Handlers", "Add JavaScript events: onmouseover, onclick, onfocus."},
				{"Solution", "Enter this in the title field: \" onmouseover=\"alert('XSS') - Then hover over the image to trigger the alert."},
			},
		},
		{
			Key:             "js-context",
			Name:            "JavaScript Context XSS",
			Difficulty:      DifficultyIntermediate,
			Description:     "Break out of JavaScript string contexts.",
			Icon:            "terminal",
			EstimatedTime:   "20 minutes",
			PageDescription: "XSS in JavaScript context - break out of string literals to execute code.",
			SuccessMessage:  "You successfully executed a JavaScript context XSS attack!",
			Hints: []Hint{
				{"JavaScript Variables", "Input embedded in JavaScript variables - check page source."},
				{"String Escape", "Close string quotes first, then add code."},
				{"Comment Trick", "Use // to comment out remaining code and prevent errors."},
				{"Solution", "Enter this in the username field: \"; alert('XSS'); // - Then click \"Show User Info\" to trigger the JavaScript."},
			},
		},
		{
			Key:             "svg-xss",
			Name:            "SVG XSS",
			Difficulty:      DifficultyIntermediate,
			Description:     "Exploit XSS through SVG file handling.",
			Icon:            "image",
			EstimatedTime:   "20 minutes",
			PageDescription: "SVG files with embedded JavaScript - XSS through vector graphics.",
			SuccessMessage:  "You successfully executed an SVG XSS attack!",
			Hints: []Hint{
				{"SVG Events", "SVG elements support onload, onclick, onmouseover events."},
				{"SVG Scripts", "SVG supports <script> tags that execute JavaScript."},
				{"Animation Events", "SVG animations can trigger events with <animate>."},
				{"Solution", "Try: <svg onload=\"alert('XSS')\"><rect width=\"100\" height=\"100\"/></svg>"},
			},
		},
		{
			Key:             "markdown-xss",
			Name:            "Markdown XSS",
			Difficulty:      DifficultyIntermediate,
			Description:     "Attack through vulnerable Markdown parsing.",
			Icon:            "file-text",
			EstimatedTime:   "25 minutes",
			PageDescription: "Markdown parser with XSS vulnerabilities - raw HTML and JavaScript URLs allowed.",
			SuccessMessage:  "You successfully executed a Markdown XSS attack!",
			Hints: []Hint{
				{"Markdown Links", "Markdown link syntax [text](url) can be exploited with javascript: URLs."},
				{"HTML in Markdown", "Many markdown parsers allow raw HTML, which can be exploited for XSS."},
				{"JavaScript URLs", "Try using javascript: protocol in markdown links."},
				{"Solution", "Try: [Click me](javascript:alert('XSS'))"},
			},
		},
		{
			Key:             "ajax-json",
			Name:            "AJAX/JSON XSS",
			Difficulty:      DifficultyIntermediate,
			Description:     "Exploit XSS in AJAX responses and JSON handling.",
			Icon:            "refresh-cw",
			EstimatedTime:   "25 minutes",
			PageDescription: "AJAX responses with user data processed by innerHTML - client-side XSS vulnerability.",
			SuccessMessage:  "You successfully executed an AJAX/JSON XSS attack!",
			Hints: []Hint{
				{"JSON Response", "Look at the JavaScript code below. The search query is reflected in the JSON response."},
				{"innerHTML Usage", "The client-side code uses innerHTML to display the search results, which can execute HTML/JavaScript."},
				{"Solution", "Try searching for: <img src=x onerror=alert('XSS')>"},
			},
		},
		{
			Key:             "filter-bypass",
			Name:            "Filter Bypass XSS",
			Difficulty:      DifficultyAdvanced,
			Description:     "Bypass common XSS protection mechanisms.",
			Icon:            "shield-off",
			EstimatedTime:   "30 minutes",
			PageDescription: "Basic XSS filters with common bypass techniques - case sensitivity and alternative tags.",
			SuccessMessage:  "You successfully bypassed the XSS filters!",
			Hints: []Hint{
				{"Case Sensitivity", "Try different cases like <ScRiPt> instead of <script>."},
				{"Alternative Tags", "Use other HTML tags like <img>, <svg>, or <iframe> with event handlers."},
				{"Encoding Bypass", "Try URL encoding, HTML entities, or other encoding methods."},
				{"Solution", "Try: <img src=x onerror=alert('XSS')> or <ScRiPt>alert('XSS')</ScRiPt>"},
			},
		},
		{
			Key:             "content-type",
			Name:            "Content-Type XSS",
			Difficulty:      DifficultyAdvanced,
			Description:     "Exploit MIME type confusion vulnerabilities.",
			Icon:            "file-type",
			EstimatedTime:   "30 minutes",
			PageDescription: "MIME type confusion - browsers interpret content based on Content-Type headers.",
			SuccessMessage:  "You successfully executed a Content-Type XSS attack!",
			Hints: []Hint{
				{"MIME Type Confusion", "Browsers interpret content based on Content-Type headers."},
				{"File Extension Spoofing", "Try using different file extensions to change content type."},
				{"HTML Content Type", "Getting HTML content type allows script execution."},
				{"Solution", "Upload content with .html extension containing script tags."},
			},
		},
		{
			Key:             "websocket-xss",
			Name:            "WebSocket XSS",
			Difficulty:      DifficultyAdvanced,
			Description:     "Real-time XSS through WebSocket messages.",
			Icon:            "wifi",
			EstimatedTime:   "30 minutes",
			PageDescription: "Real-time XSS through WebSocket messages - client-side processing without sanitization.",
			SuccessMessage:  "You successfully executed a WebSocket XSS attack!",
			Hints: []Hint{
				{"WebSocket Messages", "WebSocket messages can contain user data that gets processed by JavaScript."},
				{"Message Handling", "Look at how incoming WebSocket messages are processed and displayed."},
				{"Real-time XSS", "XSS through WebSockets can affect multiple users in real-time."},
				{"Solution", "Send a message containing: <script>alert('XSS')</script>"},
			},
		},
		{
			Key:             "file-upload-xss",
			Name:            "File Upload XSS",
			Difficulty:      DifficultyAdvanced,
			Description:     "XSS through file upload functionality.",
			Icon:            "upload",
			EstimatedTime:   "25 minutes",
			PageDescription: "File upload with content display - uploaded files rendered as HTML without sanitization.",
			SuccessMessage:  "You successfully executed a File Upload XSS attack!",
			Hints: []Hint{
				{"File Content Processing", "Uploaded files are read and their content is displayed directly on the page without any sanitization or filtering."},
				{"HTML File Upload", "Try uploading an HTML file containing JavaScript code. The file content will be rendered as HTML in the browser."},
				{"Script Execution Context", "When the file content is displayed using innerHTML, any JavaScript within it will execute in the current page context."},
				{"File Types", "You can upload files with extensions like .html, .txt, or even .js - the content is what matters, not the extension."},
				{"Solution", "Create a file with content: <script>alert('File Upload XSS!')</script> and upload it. The script will execute when the content is displayed."},
			},
		},
	}
}

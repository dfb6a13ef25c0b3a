package generator

import "github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"

// The local bank keeps question generation working when the upstream
// model is unreachable. Selection is deterministic: bank order is
// fixed, results are padded by cycling and truncated to the requested
// count, and every item is stamped with the requested difficulty.

func q(question, expected string, hints []string, expl string) domain.Question {
	return domain.Question{
		Question:              question,
		ExpectedAnswer:        expected,
		Hints:                 hints,
		DifficultyExplanation: expl,
	}
}

type bank map[domain.Difficulty][]domain.Question

var fallbackByCategory = map[domain.Category]bank{
	domain.CategoryCoding: {
		domain.DifficultyEasy: {
			q("Given a string, return true if it is an anagram of another string.",
				"Count characters with a map or sort both strings and compare.",
				[]string{"Hash map counts", "Sorting O(n log n) vs O(n)"},
				"Fundamental string/map skill for junior roles."),
			q("Check if an array has any duplicate values.",
				"Use a set to track seen elements in O(n) time, O(n) space.",
				[]string{"Set", "Early exit when found"},
				"Basic use of sets and linear scans."),
			q("Determine if a string is a palindrome ignoring non-alphanumerics.",
				"Two-pointer approach skipping non-alphanumerics; case-insensitive compare.",
				[]string{"Two pointers", "Character filtering"},
				"Classic string problem with careful pointer moves."),
			q("Merge two sorted arrays into one sorted array.",
				"Use two pointers and append the smaller element at each step.",
				[]string{"Two pointers", "Linear time"},
				"Entry-level algorithmic merging."),
			q("Validate parentheses in a string of brackets.",
				"Use a stack mapping opens to closes; push/pop and validate at end.",
				[]string{"Stack", "Mapping parentheses"},
				"Fundamental stack usage."),
		},
		domain.DifficultyMedium: {
			q("Implement a function to group anagrams.",
				"Key by sorted string or char frequency signature; return grouped arrays.",
				[]string{"Canonical key", "Hash map of lists"},
				"Combines hashing with array manipulation."),
			q("Given a binary tree, return its level order traversal.",
				"Use BFS with a queue, iterate level by level.",
				[]string{"Queue", "Breadth-first search"},
				"Tests understanding of BFS and data structures."),
			q("Find the length of the longest substring without repeating characters.",
				"Sliding window with set or map for last seen indices.",
				[]string{"Sliding window", "Hash map"},
				"Common string/window pattern problem."),
			q("Detect a cycle in a linked list and return the cycle start if any.",
				"Floyd's tortoise-hare to detect; then move pointers to find entry.",
				[]string{"Two pointers", "Cycle entry"},
				"Pointer technique with reasoning about meeting point."),
			q("Return the k most frequent elements in an array.",
				"Count with map; use bucket sort or min-heap of size k.",
				[]string{"Frequency map", "Heap or buckets"},
				"Combines counting with data-structure selection."),
		},
		domain.DifficultyHard: {
			q("Find the median of two sorted arrays in O(log (m+n)).",
				"Binary search partition approach to balance left/right halves.",
				[]string{"Partition indices", "Invariants on left/right max/min"},
				"Requires careful binary search reasoning and edge cases."),
			q("Implement a concurrent-safe LRU cache API outline.",
				"Hash map + doubly-linked list plus locks or concurrent structures.",
				[]string{"Concurrency concerns", "Eviction policy"},
				"Data structures plus concurrency considerations."),
			q("Solve the word ladder shortest transformation sequence length problem.",
				"Use BFS over word graph; optionally bi-directional BFS for performance.",
				[]string{"Graph BFS", "Pattern buckets"},
				"Graph search with efficient adjacency generation."),
			q("Find the maximum subarray sum in a circular array.",
				"Kadane's for max; and min subarray to handle wrap; compare.",
				[]string{"Kadane", "Wrap-around case"},
				"Edge case reasoning for circular structure."),
			q("Serialize and deserialize a binary tree.",
				"Use BFS or DFS order with null markers; parse to rebuild.",
				[]string{"Preorder/BFS", "Null sentinels"},
				"Designing robust encoding/decoding logic."),
		},
	},
	domain.CategoryHR: {
		domain.DifficultyEasy: {
			q("Tell me about a time you received constructive feedback. What did you do next?",
				"Receive feedback openly, plan improvements, show outcome and reflection.",
				[]string{"STAR", "Actionable steps"},
				"Basic self-reflection and growth mindset."),
			q("What motivates you in your daily work?",
				"Connects personal drivers to impact, learning, and team goals.",
				[]string{"Impact", "Learning"},
				"Assesses values and alignment."),
			q("Describe a time you helped a teammate who was stuck.",
				"Mentoring, knowledge sharing, enabling autonomy, results.",
				[]string{"Mentorship", "Outcome"},
				"Collaboration and willingness to help."),
			q("How do you prioritize tasks when everything is urgent?",
				"Clarify priority, trade-offs, communicate, and timebox.",
				[]string{"Prioritization", "Communication"},
				"Basic organization and communication."),
		},
		domain.DifficultyMedium: {
			q("Describe a conflict with a teammate and how you resolved it.",
				"Clarify goals, active listening, compromise, measurable resolution, lessons learned.",
				[]string{"Stakeholders", "Resolution path"},
				"Assesses collaboration and communication depth."),
			q("Share a time you managed unclear requirements and delivered successfully.",
				"Drove clarity, iterated with stakeholders, delivered incrementally with feedback.",
				[]string{"Ambiguity", "Iteration"},
				"Product thinking and stakeholder alignment."),
			q("Tell me about disagreeing with your manager and how you handled it.",
				"Respectful challenge with evidence, alignment on goals, follow-up and reflection.",
				[]string{"Disagreement", "Evidence"},
				"Professionalism and influence."),
			q("Describe a time you missed a deadline and what you changed afterward.",
				"Root cause, transparency, mitigation, process improvements.",
				[]string{"Root cause", "Process change"},
				"Ownership and continuous improvement."),
		},
		domain.DifficultyHard: {
			q("How did you lead a cross-functional initiative under tight deadlines?",
				"Scope, prioritization, alignment, risk mitigation, delegation, metrics, outcome.",
				[]string{"Leadership", "Trade-offs", "Impact"},
				"Evaluates leadership and strategic thinking."),
			q("Tell me about a time you had to manage an underperforming teammate.",
				"Clear expectations, coaching plan, timely feedback, escalation if needed.",
				[]string{"Coaching", "Expectations"},
				"People leadership and accountability."),
			q("Describe driving an org-wide change and how you handled resistance.",
				"Stakeholder mapping, pilots, metrics, comms plan, addressing concerns.",
				[]string{"Change management", "Stakeholders"},
				"Influence and large-scale coordination."),
			q("Share a critical incident you owned end-to-end.",
				"Incident response, communication, remediation, root cause, postmortem.",
				[]string{"Incident response", "Postmortem"},
				"Crisis leadership and learning culture."),
		},
	},
	domain.CategorySystemDesign: {
		domain.DifficultyEasy: {
			q("Design a service to upload and serve images for a small app.",
				"API, storage (S3), metadata DB, basic CDN, simple auth; small scale.",
				[]string{"Object storage", "CDN basics"},
				"Single service with straightforward components."),
			q("Design a feature flag service for one application.",
				"CRUD API, config store, SDK polling, simple cache, audit trail.",
				[]string{"Config store", "SDK"},
				"Simple control-plane style service."),
			q("Design an email notification sender for low volume.",
				"Queue, worker, SMTP/provider, retries, minimal templates.",
				[]string{"Queue", "Retries"},
				"Event-driven basics."),
			q("Design a read-only product catalog API.",
				"REST API, cache, search index, single DB, pagination.",
				[]string{"Caching", "Pagination"},
				"Basic read-heavy design."),
		},
		domain.DifficultyMedium: {
			q("Design a URL shortener handling 10k RPS.",
				"API, id generation/hash, collisions, DB sharding/replication, cache, CDN, observability.",
				[]string{"Base62", "Cache", "Replication"},
				"Multi-component system with scaling trade-offs."),
			q("Design a rate limiter for user requests.",
				"Token bucket or leaky bucket; centralized store (Redis), correctness vs cost trade-offs.",
				[]string{"Token bucket", "Redis"},
				"Distributed coordination and consistency trade-offs."),
			q("Design a Pastebin-like text sharing service.",
				"Create/read paste, short ids, store, TTL, abuse prevention, cache, CDN.",
				[]string{"TTL", "CDN"},
				"Balanced read/write patterns."),
			q("Design a simple metrics ingestion and dashboard service.",
				"Ingest API, queue, time-series DB, rollups, retention, dashboards.",
				[]string{"Time-series", "Rollups"},
				"Data modeling and retention planning."),
		},
		domain.DifficultyHard: {
			q("Design a real-time chat system supporting millions of concurrent connections.",
				"Gateway, WebSocket fanout, partitioning, presence, message queues, storage, backpressure, consistency.",
				[]string{"Fanout", "Sharding", "Backpressure"},
				"Distributed systems challenges and SLAs."),
			q("Design a ride-matching/dispatch system (e.g., rideshare) at scale.",
				"Geo-indexing, matching, surge pricing, streaming, consistency/latency trade-offs.",
				[]string{"Geo index", "Streaming"},
				"Complex real-time spatial matching."),
			q("Design a global feed ranking system (e.g., short-video app).",
				"Ingestion, feature store, ranking, caching, fanout/fan-in, experimentation.",
				[]string{"Ranking", "Fanout vs fan-in"},
				"Large-scale ML + systems integration."),
			q("Design a distributed lock service.",
				"Consensus (Raft/Paxos/ZK), fencing tokens, failure modes, client libs.",
				[]string{"Consensus", "Fencing tokens"},
				"Coordination primitives and correctness."),
		},
	},
	domain.CategoryTechnical: {
		domain.DifficultyEasy: {
			q("What is the difference between stack and heap memory?",
				"Stack: function frames; Heap: dynamic allocation; implications for lifetime and access.",
				[]string{"Lifetime", "Allocation"},
				"Fundamental memory model knowledge."),
			q("Explain Big-O notation and what O(n) means.",
				"Asymptotic upper bound of time/space; O(n) grows linearly with input size.",
				[]string{"Asymptotic", "Growth rate"},
				"Core algorithmic complexity concept."),
			q("What is REST and how does it differ from RPC?",
				"REST: resource-based over HTTP verbs; RPC: action-based calls; trade-offs.",
				[]string{"Resources", "HTTP verbs"},
				"Web API fundamentals."),
			q("Relational vs NoSQL databases: when would you choose each?",
				"Relational for ACID and relations; NoSQL for scale/partitioning; depends on access patterns.",
				[]string{"ACID", "Access patterns"},
				"High-level DB selection trade-offs."),
			q("What is a memory leak?",
				"Allocated memory not released/referenced unnecessarily; leads to growth and performance issues.",
				[]string{"Lifetime", "Garbage collection"},
				"Basic reliability concept."),
		},
		domain.DifficultyMedium: {
			q("Compare HTTP/1.1 vs HTTP/2 and their performance implications.",
				"Multiplexing, header compression, prioritization; fewer connections; latency improvements.",
				[]string{"Multiplexing", "HPACK"},
				"Requires protocol concepts and trade-offs."),
			q("Explain ACID properties of transactions.",
				"Atomicity, Consistency, Isolation, Durability; what each guarantees.",
				[]string{"Atomicity", "Isolation"},
				"Database transaction fundamentals."),
			q("How does the JavaScript event loop work?",
				"Call stack, task/microtask queues, event loop scheduling.",
				[]string{"Microtasks", "Macrotasks"},
				"Runtime concurrency model understanding."),
			q("Explain indexing in databases and trade-offs.",
				"Speeds reads with additional structures; slower writes and more storage.",
				[]string{"Selectivity", "Write overhead"},
				"DB performance tuning basics."),
		},
		domain.DifficultyHard: {
			q("Explain MVCC in databases and how it enables concurrent reads/writes.",
				"Versioned snapshots, visibility rules, write conflicts, vacuum/GC, isolation levels.",
				[]string{"Snapshots", "Isolation levels"},
				"Deeper DB internals knowledge."),
			q("What does the CAP theorem state and how does it apply in practice?",
				"Impossibility of simultaneously guaranteeing C, A, and P; systems choose trade-offs.",
				[]string{"Consistency", "Availability", "Partition tolerance"},
				"Distributed systems principle and implications."),
			q("Lock-free vs lock-based concurrency: when would you choose either?",
				"Lock-free uses atomics and retries; avoids deadlocks; complexity vs performance trade-offs.",
				[]string{"Atomics", "Deadlocks"},
				"Advanced concurrency design."),
		},
	},
	domain.CategoryProject: {
		domain.DifficultyEasy: {
			q("Summarize the core user journey your project enables.",
				"Key steps, actors, success criteria, and constraints.",
				[]string{"Actors", "Success criteria"},
				"Ensures clear articulation of basics."),
			q("List the main components and how they interact in your project.",
				"High-level diagram of services/modules and data flow.",
				[]string{"Components", "Data flow"},
				"Architecture literacy."),
			q("What were the top 2 non-functional requirements?",
				"E.g., performance, reliability, security; how they shaped design.",
				[]string{"NFRs", "Trade-offs"},
				"Requirements thinking."),
			q("How did you ensure basic observability in your project?",
				"Logging, metrics, tracing; dashboards and alerts.",
				[]string{"Metrics", "Tracing"},
				"Operational hygiene."),
		},
		domain.DifficultyMedium: {
			q("Which component in your project was the bottleneck and how did you address it?",
				"Measurement, root cause analysis, caching/queueing/partitioning, validation of results.",
				[]string{"Measure", "Mitigate", "Validate"},
				"Applies practical performance tuning."),
			q("How did you approach testing (unit/integration/e2e) and CI?",
				"Coverage strategy, environments, gates, flaky test handling.",
				[]string{"CI", "Integration tests"},
				"Quality and delivery process."),
			q("Describe your security approach (authz/authn/secrets) in the project.",
				"Principle of least privilege, secret storage, encryption, audits.",
				[]string{"Auth", "Secrets"},
				"Security by design."),
			q("What was your rollback plan for risky releases?",
				"Canary, feature flags, versioned schemas, quick rollback.",
				[]string{"Canary", "Feature flags"},
				"Safe delivery practices."),
		},
		domain.DifficultyHard: {
			q("Propose a migration plan to re-architect a critical subsystem in your project with zero downtime.",
				"Strangler pattern, dual-writes/backfills, canary, rollback, observability.",
				[]string{"Strangler fig", "Canary", "Rollback"},
				"Complex migration strategy and risk management."),
			q("Design a multi-region strategy for your system.",
				"Data replication, latency routing, failover, consistency trade-offs, cost.",
				[]string{"Multi-region", "Failover"},
				"Geo-distribution complexity."),
			q("How would you cut infra cost by 30% without hurting reliability?",
				"Right-sizing, autoscaling, caching, storage tiers, workload scheduling.",
				[]string{"Autoscaling", "Caching"},
				"Optimization under constraints."),
			q("What is your disaster recovery plan (RPO/RTO) for this system?",
				"Backups, replication, DR drills, objectives and validation.",
				[]string{"RPO", "RTO"},
				"Resilience planning and execution."),
		},
	},
}

// Subtopic banks override the Technical bank when they match.
var technicalBySubtopic = map[string]bank{
	"Python": {
		domain.DifficultyEasy: {
			q("What are Python lists and tuples? How do they differ?",
				"Lists are mutable; tuples are immutable. Both are sequence types with different use cases.",
				[]string{"Mutability", "Use cases"},
				"Core Python data structures."),
			q("Explain list comprehensions with an example.",
				"Concise syntax to construct lists (e.g., [x*x for x in arr if x%2==0]).",
				[]string{"Comprehension", "Predicate"},
				"Fundamental Python idiom."),
			q("What is PEP 8 and why follow it?",
				"Python style guide; improves readability and consistency.",
				[]string{"Style", "Readability"},
				"Clean code basics."),
			q("How do virtual environments help in Python?",
				"Isolate dependencies per project via venv/virtualenv.",
				[]string{"Isolation", "Dependencies"},
				"Standard project hygiene."),
			q("What is the difference between a list and a generator expression?",
				"List builds the whole list in memory; generator yields lazily on iteration.",
				[]string{"Eager vs lazy"},
				"Memory/performance basics."),
		},
		domain.DifficultyMedium: {
			q("Describe generators and how they differ from lists.",
				"Lazy iteration using yield; memory efficient; single pass.",
				[]string{"yield", "Lazy"},
				"Performance-conscious Python patterns."),
			q("Explain GIL and its impact on multithreading.",
				"Global Interpreter Lock prevents multiple native threads executing Python bytecode simultaneously; use multiprocessing or I/O-bound threads.",
				[]string{"GIL", "I/O vs CPU"},
				"Concurrency awareness."),
			q("When to use dataclasses vs namedtuple?",
				"dataclasses for mutable, default values, methods; namedtuple for lightweight immutable tuples.",
				[]string{"Mutability", "Boilerplate"},
				"Right tool for the job."),
		},
		domain.DifficultyHard: {
			q("Optimize a CPU-bound Python function.",
				"Use C extensions/NumPy/Cython, or multiprocessing; profile to find hotspots.",
				[]string{"C extensions", "Profile"},
				"Performance engineering."),
			q("Explain asyncio event loop and backpressure handling.",
				"Single-threaded loop with awaitables; manage producer/consumer pace using queues/semaphores.",
				[]string{"await", "Queues"},
				"Advanced async patterns."),
		},
	},
	"React": {
		domain.DifficultyEasy: {
			q("What are React components and props?",
				"Components compose UI; props are read-only inputs.",
				[]string{"Composition", "Props"},
				"React fundamentals."),
			q("When do you use state vs props?",
				"State is internal and mutable; props are external inputs.",
				[]string{"State", "Props"},
				"Basic data flow."),
			q("What is JSX?",
				"Syntax sugar to describe UI trees that compiles to React.createElement.",
				[]string{"Syntax", "Compilation"},
				"Core concept."),
			q("Why are keys needed when rendering lists?",
				"Keys help React identify items for efficient reconciliation and avoid incorrect reuse.",
				[]string{"Reconciliation", "Stable identity"},
				"Avoids subtle rendering bugs."),
		},
		domain.DifficultyMedium: {
			q("Explain useEffect and common pitfalls.",
				"Side-effects with dependency arrays; stale closures; cleanup.",
				[]string{"Deps array", "Cleanup"},
				"Hooks proficiency."),
			q("How to optimize re-renders?",
				"Memoization (React.memo, useMemo, useCallback), keying, splitting state.",
				[]string{"Memo", "Keys"},
				"Performance tuning."),
			q("Describe controlled vs uncontrolled components.",
				"Controlled uses state as source of truth; uncontrolled uses refs/DOM.",
				[]string{"Forms", "Refs"},
				"Form patterns."),
		},
		domain.DifficultyHard: {
			q("Design a scalable state management approach.",
				"Context for global config; Redux/Zustand/Recoil for app state; colocation; query libraries for server cache.",
				[]string{"Colocation", "Server cache"},
				"Architecture decisions."),
			q("Handle concurrent UI updates and race conditions with async data.",
				"Use abort controllers, request dedupe, idempotent updates, Suspense patterns.",
				[]string{"Abort", "Suspense"},
				"Robust async UX."),
		},
	},
	"JavaScript": {
		domain.DifficultyEasy: {
			q("Explain var, let, and const.",
				"Scope and mutability differences; hoisting behavior.",
				[]string{"Scope", "Hoist"},
				"Language basics."),
			q("What is a closure?",
				"Function that captures references from its lexical environment.",
				[]string{"Lexical scope"},
				"Core concept."),
			q("Difference between == and ===?",
				"== performs coercion; === strict equality.",
				[]string{"Coercion"},
				"Common pitfalls."),
			q("What are arrow functions and how do they treat this?",
				"Lexically binds this from surrounding scope; concise syntax; no new.target.",
				[]string{"Lexical this"},
				"Modern JS essentials."),
		},
		domain.DifficultyMedium: {
			q("Explain event loop, microtasks, and macrotasks.",
				"Microtasks (promises) run before next macrotask; affects ordering.",
				[]string{"Ordering"},
				"Runtime model."),
			q("How does prototypal inheritance work?",
				"Objects delegate property lookups to their prototype chain.",
				[]string{"Prototype chain"},
				"Object model."),
			q("What is debouncing vs throttling?",
				"Debounce delays until quiet; throttle enforces rate limit.",
				[]string{"Rate-limiting"},
				"Performance patterns."),
		},
		domain.DifficultyHard: {
			q("Design a module loader/resolver strategy.",
				"ESM vs CJS, tree-shaking, bundlers, dynamic import, code splitting.",
				[]string{"ESM", "Tree-shake"},
				"Build tooling understanding."),
			q("Implement an LRU cache in JS and discuss complexity.",
				"Map + doubly linked list; O(1) get/put.",
				[]string{"Map", "DLL"},
				"DSA in JS."),
		},
	},
}

// fallbackQuestions builds the deterministic local result for req.
func fallbackQuestions(req Request) []domain.Question {
	b, ok := fallbackByCategory[req.Category]
	if req.Category == domain.CategoryTechnical {
		if sub, subOK := technicalBySubtopic[req.TechnicalSubtopic]; subOK {
			b = sub
			ok = true
		}
	}
	if !ok {
		b = fallbackByCategory[domain.CategoryTechnical]
	}

	pool := b[req.Difficulty]
	if len(pool) == 0 {
		pool = b[domain.DifficultyEasy]
	}

	out := make([]domain.Question, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		item := pool[i%len(pool)]
		item.Difficulty = req.Difficulty
		out = append(out, item)
	}
	return out
}
